package report_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cheflow/internal/app"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/ui/report"
	"gopkg.in/yaml.v3"
)

func nodeReport() *app.Report {
	return &app.Report{
		Cookbook: domain.Cookbook{
			Identity: domain.NewCookbookIdentity("node_web"),
			Path:     "/work/node_web",
			Version:  domain.MustParseVersion("1.2.4"),
		},
		Frozen: true,
		Environments: []domain.ResolvedEnvironment{
			{DisplayName: "production"},
			{DisplayName: "staging"},
		},
		Production:  []string{"1.2.4", "1.2.2"},
		Development: []string{"1.2.5", "1.2.3"},
	}
}

func TestRender_Text(t *testing.T) {
	tests := []struct {
		name       string
		report     func() *app.Report
		goldenName string
	}{
		{
			name:       "frozen node cookbook",
			report:     nodeReport,
			goldenName: "text_node_frozen",
		},
		{
			name: "development non-node cookbook without environments",
			report: func() *app.Report {
				return &app.Report{
					Cookbook: domain.Cookbook{
						Identity: domain.NewCookbookIdentity("apache"),
						Path:     "/work/apache",
						Version:  domain.MustParseVersion("2.0.1"),
					},
					Production:  []string{},
					Development: []string{"2.0.1"},
				}
			},
			goldenName: "text_non_node_dev",
		},
		{
			name: "environments with versions",
			report: func() *app.Report {
				r := nodeReport()
				r.Frozen = false
				r.Environments = []domain.ResolvedEnvironment{
					{DisplayName: "production", DeployedVersion: "= 1.2.4"},
					{DisplayName: "staging", DeployedVersion: "= 1.2.5"},
				}
				return r
			},
			goldenName: "text_with_versions",
		},
		{
			name: "truncated version lists",
			report: func() *app.Report {
				r := nodeReport()
				r.Production = nil
				for i := 40; i >= 0; i -= 2 {
					r.Production = append(r.Production, fmt.Sprintf("1.0.%d", i))
				}
				return r
			},
			goldenName: "text_truncated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			require.NoError(t, report.Render(buf, tt.report(), report.FormatText))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRender_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, report.Render(buf, nodeReport(), report.FormatJSON))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "node_web", doc["name"])
	assert.Equal(t, "node", doc["type"])
	assert.Equal(t, "1.2.4", doc["version"])
	assert.Equal(t, true, doc["frozen"])
	assert.Equal(t, false, doc["development"])
	assert.Equal(t, []any{
		map[string]any{"name": "production"},
		map[string]any{"name": "staging"},
	}, doc["environments"])
	assert.Equal(t, map[string]any{
		"production":  []any{"1.2.4", "1.2.2"},
		"development": []any{"1.2.5", "1.2.3"},
	}, doc["versions"])
}

func TestRender_YAML(t *testing.T) {
	r := nodeReport()
	r.Environments = nil
	r.Development = nil

	buf := &bytes.Buffer{}
	require.NoError(t, report.Render(buf, r, report.FormatYAML))

	var doc struct {
		Name         string           `yaml:"name"`
		Environments []map[string]any `yaml:"environments"`
		Versions     struct {
			Production  []string `yaml:"production"`
			Development []string `yaml:"development"`
		} `yaml:"versions"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "node_web", doc.Name)
	assert.NotNil(t, doc.Environments)
	assert.Empty(t, doc.Environments)
	assert.Equal(t, []string{"1.2.4", "1.2.2"}, doc.Versions.Production)
	assert.Contains(t, buf.String(), "development: []")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"":     report.FormatText,
		"text": report.FormatText,
		"JSON": report.FormatJSON,
		"yaml": report.FormatYAML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, domain.ErrInvalidOutputFormat)
	assert.Equal(t, domain.KindInput, domain.KindOf(err))
}
