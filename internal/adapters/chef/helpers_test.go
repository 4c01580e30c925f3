package chef_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cheflow/internal/adapters/chef"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/cheflow/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const orgPath = "/organizations/acme"

var testKey = sync.OnceValue(func() []byte {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
})

func writeKey(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.pem")
	require.NoError(t, os.WriteFile(path, testKey(), domain.FilePerm))
	return path
}

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

// connect starts an httptest server with mux mounted below the organization path.
func connect(t *testing.T, mux *http.ServeMux) ports.ChefServer {
	t.Helper()
	server, _ := start(t, mux)
	return server
}

// start is connect that also returns the organization URL of the test server.
func start(t *testing.T, mux *http.ServeMux) (ports.ChefServer, string) {
	t.Helper()

	root := http.NewServeMux()
	root.Handle(orgPath+"/", http.StripPrefix(orgPath, mux))
	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)

	server, err := chef.NewConnector(quietLogger(t)).Connect(domain.Config{
		ServerURL:         srv.URL + orgPath,
		ClientName:        "deployer",
		ClientKey:         writeKey(t),
		SSLVerify:         true,
		Timeout:           5 * time.Second,
		UploadConcurrency: 2,
	})
	require.NoError(t, err)
	return server, srv.URL + orgPath
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
