// Package chef talks to a Chef Infra Server through github.com/go-chef/chef.
package chef

import (
	"errors"
	"net/http"
	"os"
	"strings"

	gochef "github.com/go-chef/chef"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/zerr"
)

// Connector implements ports.ServerConnector.
type Connector struct {
	logger ports.Logger
}

var _ ports.ServerConnector = (*Connector)(nil)

// NewConnector creates a new Connector.
func NewConnector(logger ports.Logger) *Connector {
	return &Connector{logger: logger}
}

// Connect builds a signed API client for the configured organization.
func (c *Connector) Connect(cfg domain.Config) (ports.ChefServer, error) {
	key, err := os.ReadFile(cfg.ClientKey)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrServerClientFailed, "cannot read client key"), "client_key", cfg.ClientKey)
	}

	client, err := gochef.NewClient(&gochef.Config{
		Name:    cfg.ClientName,
		Key:     string(key),
		BaseURL: baseURL(cfg.ServerURL),
		SkipSSL: !cfg.SSLVerify,
		Timeout: int(cfg.Timeout.Seconds()),
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrServerClientFailed, err.Error()), "server_url", cfg.ServerURL)
	}

	c.logger.Debug("connected to " + cfg.ServerURL + " as " + cfg.ClientName)

	return NewServer(client, c.logger, cfg.UploadConcurrency), nil
}

// baseURL ensures the organization URL ends with a slash so relative endpoints resolve below it.
func baseURL(serverURL string) string {
	if strings.HasSuffix(serverURL, "/") {
		return serverURL
	}
	return serverURL + "/"
}

// statusOf returns the HTTP status carried by a go-chef error, or 0.
func statusOf(err error) int {
	var resp *gochef.ErrorResponse
	if errors.As(err, &resp) && resp.Response != nil {
		return resp.Response.StatusCode
	}
	return 0
}

func isNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// requestFailed wraps a transport or API error as ErrServerRequestFailed.
func requestFailed(err error, op string) error {
	wrapped := zerr.With(zerr.Wrap(domain.ErrServerRequestFailed, op), "reason", err.Error())
	if status := statusOf(err); status != 0 {
		wrapped = zerr.With(wrapped, "status", status)
	}
	return wrapped
}
