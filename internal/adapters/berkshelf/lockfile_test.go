package berkshelf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cheflow/internal/adapters/berkshelf"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newEngine(t *testing.T) *berkshelf.Engine {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return berkshelf.NewEngine(log)
}

func TestEngine_Load(t *testing.T) {
	graph, err := newEngine(t).Load(filepath.Join("testdata", "Berksfile.lock"))
	require.NoError(t, err)

	assert.Equal(t, map[string]domain.SemanticVersion{
		"apache2":   domain.MustParseVersion("5.0.1"),
		"logrotate": domain.MustParseVersion("2.2.0"),
		"node_web":  domain.MustParseVersion("1.2.4"),
	}, graph.Locks)
	assert.Equal(t, map[string]string{
		"apache2":   "= 5.0.1",
		"logrotate": "= 2.2.0",
		"node_web":  "= 1.2.4",
	}, graph.Constraints())
}

func TestEngine_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no graph section",
			content: "DEPENDENCIES\n  node_web\n",
			wantErr: domain.ErrLockfileParseFailed,
		},
		{
			name:    "garbled entry",
			content: "GRAPH\n  apache2 5.0.1\n",
			wantErr: domain.ErrLockfileParseFailed,
		},
		{
			name:    "bad version",
			content: "GRAPH\n  apache2 (5.0)\n",
			wantErr: domain.ErrLockfileParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "Berksfile.lock")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), domain.FilePerm))

			_, err := newEngine(t).Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngine_Load_Missing(t *testing.T) {
	_, err := newEngine(t).Load(filepath.Join(t.TempDir(), "Berksfile.lock"))
	require.ErrorIs(t, err, domain.ErrLockfileNotFound)
	assert.Equal(t, domain.KindPrecondition, domain.KindOf(err))
}

func TestEngine_Apply(t *testing.T) {
	graph := &domain.LockedGraph{
		Path: "Berksfile.lock",
		Locks: map[string]domain.SemanticVersion{
			"apache2":  domain.MustParseVersion("5.0.1"),
			"node_web": domain.MustParseVersion("1.2.4"),
		},
	}
	want := map[string]string{"apache2": "= 5.0.1", "node_web": "= 1.2.4"}

	tests := []struct {
		name        string
		saved       map[string]string
		wantApplied bool
	}{
		{name: "server saved the locks", saved: want, wantApplied: true},
		{name: "server dropped an entry", saved: map[string]string{"node_web": "= 1.2.4"}, wantApplied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockEnvironmentStore(ctrl)
			store.EXPECT().GetEnvironment(gomock.Any(), "node_web_staging").
				Return(&domain.EnvironmentRecord{RawName: "node_web_staging"}, nil)
			store.EXPECT().SetCookbookVersions(gomock.Any(), "node_web_staging", want).Return(tt.saved, nil)

			applied, err := newEngine(t).Apply(t.Context(), store, graph, "node_web_staging")
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
		})
	}
}

func TestEngine_Apply_EnvironmentNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockEnvironmentStore(ctrl)
	store.EXPECT().GetEnvironment(gomock.Any(), "node_web_qa").Return(nil, domain.ErrEnvironmentNotFound)

	graph := &domain.LockedGraph{Locks: map[string]domain.SemanticVersion{}}
	applied, err := newEngine(t).Apply(t.Context(), store, graph, "node_web_qa")

	require.ErrorIs(t, err, domain.ErrEnvironmentNotFound)
	assert.False(t, applied)
}
