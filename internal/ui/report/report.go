// Package report renders the cookbook info report as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/cheflow/internal/app"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/ui/output"
	"go.trai.ch/cheflow/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	// FormatText is the styled, human-readable report.
	FormatText Format = "text"
	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// MaxVersionsShown caps each version list in the text report.
const MaxVersionsShown = 15

// environmentColumn is the width environment names are padded to when versions are shown.
const environmentColumn = 12

// environmentIndent aligns continuation lines under the first environment.
var environmentIndent = strings.Repeat(" ", len("Environments: "))

// ParseFormat validates a --format value. An empty value selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, "unknown format"), "format", s)
	}
}

// document is the machine-readable shape of a report.
type document struct {
	Name         string                       `json:"name" yaml:"name"`
	Type         string                       `json:"type" yaml:"type"`
	Version      string                       `json:"version" yaml:"version"`
	Development  bool                         `json:"development" yaml:"development"`
	Frozen       bool                         `json:"frozen" yaml:"frozen"`
	Path         string                       `json:"path" yaml:"path"`
	Environments []domain.ResolvedEnvironment `json:"environments" yaml:"environments"`
	Versions     versions                     `json:"versions" yaml:"versions"`
}

type versions struct {
	Production  []string `json:"production" yaml:"production"`
	Development []string `json:"development" yaml:"development"`
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *app.Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDocument(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(r)); err != nil {
			return zerr.Wrap(err, "failed to encode report")
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, renderText(output.New(w), r))
		return err
	}
}

func toDocument(r *app.Report) document {
	envs := r.Environments
	if envs == nil {
		envs = []domain.ResolvedEnvironment{}
	}
	return document{
		Name:         r.Cookbook.Identity.Name(),
		Type:         r.Cookbook.Identity.Type(),
		Version:      r.Cookbook.Version.String(),
		Development:  r.Cookbook.Version.IsDevelopment(),
		Frozen:       r.Frozen,
		Path:         r.Cookbook.Path,
		Environments: envs,
		Versions: versions{
			Production:  nonNil(r.Production),
			Development: nonNil(r.Development),
		},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func renderText(out *termenv.Output, r *app.Report) string {
	var b strings.Builder

	heading := cases.Title(language.English).String(r.Cookbook.Identity.Type()) + " Cookbook:"
	title := r.Cookbook.Identity.Name() + " v" + r.Cookbook.Version.String()

	b.WriteString(output.Bold(out, output.Paint(out, heading, style.Iris)) + " " + output.Bold(out, title))
	if r.Cookbook.Version.IsDevelopment() {
		b.WriteString(" " + output.Paint(out, "(dev)", style.Yellow))
	}
	if r.Frozen {
		b.WriteString(" " + output.Paint(out, "(FROZEN)", style.Blue))
	}
	b.WriteString("\n")
	b.WriteString(output.Paint(out, r.Cookbook.Path, style.Slate) + "\n\n")

	names := make([]string, 0, len(r.Environments))
	for _, env := range r.Environments {
		names = append(names, environmentLine(env))
	}
	b.WriteString("Environments: " + strings.Join(names, "\n"+environmentIndent) + "\n\n")

	b.WriteString("Versions: (most recent)\n")
	b.WriteString("  Production:  " + versionList(out, r.Production, style.ChannelColor(false)) + "\n")
	b.WriteString("  Development:  " + versionList(out, r.Development, style.ChannelColor(true)) + "\n")

	return b.String()
}

func environmentLine(env domain.ResolvedEnvironment) string {
	if env.DeployedVersion == "" {
		return env.DisplayName
	}
	return fmt.Sprintf("%-*s (%s)", environmentColumn, env.DisplayName, env.DeployedVersion)
}

// versionList joins at most MaxVersionsShown versions, marking truncation with "(...)".
func versionList(out *termenv.Output, vs []string, color lipgloss.Color) string {
	shown := vs
	if len(vs) > MaxVersionsShown {
		shown = vs[:MaxVersionsShown]
	}
	s := output.Paint(out, strings.Join(shown, ", "), color)
	if len(vs) > MaxVersionsShown {
		s += " (...)"
	}
	return s
}
