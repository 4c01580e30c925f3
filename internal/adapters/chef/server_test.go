package chef_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cheflow/internal/adapters/chef"
	"go.trai.ch/cheflow/internal/core/domain"
)

func TestConnector_Connect_MissingKey(t *testing.T) {
	_, err := chef.NewConnector(quietLogger(t)).Connect(domain.Config{
		ServerURL:  "https://chef.example.com/organizations/acme",
		ClientName: "deployer",
		ClientKey:  "/nonexistent/client.pem",
		Timeout:    time.Second,
	})
	require.ErrorIs(t, err, domain.ErrServerClientFailed)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
}

func TestServer_SearchEnvironments(t *testing.T) {
	tests := []struct {
		name      string
		cookbook  string
		wantQuery string
	}{
		{name: "node cookbook matches by name", cookbook: "node_web", wantQuery: "name:node_web*"},
		{name: "other cookbook matches by pin", cookbook: "apache", wantQuery: "cookbook_versions:apache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			mux := http.NewServeMux()
			mux.HandleFunc("/search/environment", func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query().Get("q")
				writeJSON(t, w, http.StatusOK, map[string]any{
					"total": 2,
					"start": 0,
					"rows": []map[string]any{
						{"name": "node_web", "cookbook_versions": map[string]string{"node_web": "= 1.2.4"}},
						{"name": "node_web_staging", "cookbook_versions": map[string]string{}},
					},
				})
			})

			records, err := connect(t, mux).SearchEnvironments(t.Context(), domain.NewCookbookIdentity(tt.cookbook))
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, gotQuery)
			require.Len(t, records, 2)
			assert.Equal(t, "node_web", records[0].RawName)
			assert.Equal(t, "= 1.2.4", records[0].DeployedVersions["node_web"])
			assert.Equal(t, "node_web_staging", records[1].RawName)
		})
	}
}

func TestServer_SearchEnvironments_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/environment", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{"error": []string{"boom"}})
	})

	_, err := connect(t, mux).SearchEnvironments(t.Context(), domain.NewCookbookIdentity("node_web"))
	require.ErrorIs(t, err, domain.ErrServerRequestFailed)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
}

func TestServer_ListVersions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cookbooks/apache", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("num_versions"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"apache": map[string]any{
				"url": "https://chef.example.com/organizations/acme/cookbooks/apache",
				"versions": []map[string]string{
					{"version": "1.2.5", "url": "x"},
					{"version": "1.2.4", "url": "x"},
				},
			},
		})
	})

	versions, err := connect(t, mux).ListVersions(t.Context(), "apache")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2.5", "1.2.4"}, versions)
}

func TestServer_ListVersions_UnknownCookbook(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cookbooks/ghost", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"error": []string{"not found"}})
	})

	versions, err := connect(t, mux).ListVersions(t.Context(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestServer_FindCookbook(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cookbooks/apache/1.2.4", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"cookbook_name": "apache", "version": "1.2.4", "frozen?": true})
	})
	mux.HandleFunc("/cookbooks/apache/1.2.5", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"cookbook_name": "apache", "version": "1.2.5", "frozen?": false})
	})
	mux.HandleFunc("/cookbooks/apache/9.9.9", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"error": []string{"not found"}})
	})
	server := connect(t, mux)

	tests := []struct {
		version string
		want    domain.CookbookStatus
	}{
		{version: "1.2.4", want: domain.CookbookStatus{Exists: true, Frozen: true}},
		{version: "1.2.5", want: domain.CookbookStatus{Exists: true, Frozen: false}},
		{version: "9.9.9", want: domain.CookbookStatus{}},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := server.FindCookbook(t.Context(), "apache", domain.MustParseVersion(tt.version))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServer_Environments(t *testing.T) {
	var saved map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/environments/node_web_staging", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, map[string]any{
				"name":              "node_web_staging",
				"chef_type":         "environment",
				"json_class":        "Chef::Environment",
				"cookbook_versions": map[string]string{"legacy": "= 0.1.0"},
			})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
			writeJSON(t, w, http.StatusOK, saved)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/environments/node_web_qa", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"error": []string{"not found"}})
	})
	server := connect(t, mux)

	env, err := server.GetEnvironment(t.Context(), "node_web_staging")
	require.NoError(t, err)
	assert.Equal(t, "node_web_staging", env.RawName)
	assert.Equal(t, map[string]string{"legacy": "= 0.1.0"}, env.DeployedVersions)

	locks := map[string]string{"node_web": "= 1.2.4", "apache2": "= 5.0.1"}
	got, err := server.SetCookbookVersions(t.Context(), "node_web_staging", locks)
	require.NoError(t, err)
	assert.Equal(t, locks, got)
	assert.Equal(t, map[string]any{"node_web": "= 1.2.4", "apache2": "= 5.0.1"}, saved["cookbook_versions"])

	_, err = server.GetEnvironment(t.Context(), "node_web_qa")
	require.ErrorIs(t, err, domain.ErrEnvironmentNotFound)

	_, err = server.SetCookbookVersions(t.Context(), "node_web_qa", locks)
	require.ErrorIs(t, err, domain.ErrEnvironmentNotFound)
}
