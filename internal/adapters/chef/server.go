package chef

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	gochef "github.com/go-chef/chef"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/zerr"
)

const environmentIndex = "environment"

// Server implements ports.ChefServer over a go-chef client.
type Server struct {
	client      *gochef.Client
	logger      ports.Logger
	concurrency int
}

var _ ports.ChefServer = (*Server)(nil)

// NewServer wraps an existing go-chef client. concurrency bounds parallel sandbox uploads.
func NewServer(client *gochef.Client, logger ports.Logger, concurrency int) *Server {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Server{client: client, logger: logger, concurrency: concurrency}
}

// SearchEnvironments queries the environment index for environments related to the cookbook.
func (s *Server) SearchEnvironments(ctx context.Context, cookbook domain.CookbookIdentity) ([]domain.EnvironmentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := "cookbook_versions:" + cookbook.Name()
	if cookbook.IsNodeScoped() {
		query = "name:" + cookbook.Name() + "*"
	}
	s.logger.Debug("searching environments: " + query)

	res, err := s.client.Search.Exec(environmentIndex, query)
	if err != nil {
		return nil, zerr.With(requestFailed(err, "environment search failed"), "query", query)
	}

	records := make([]domain.EnvironmentRecord, 0, len(res.Rows))
	for _, row := range res.Rows {
		record, err := decodeEnvironmentRow(row)
		if err != nil {
			return nil, zerr.With(err, "query", query)
		}
		records = append(records, record)
	}
	return records, nil
}

// decodeEnvironmentRow converts a generic search row into an EnvironmentRecord.
func decodeEnvironmentRow(row any) (domain.EnvironmentRecord, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return domain.EnvironmentRecord{}, zerr.Wrap(domain.ErrServerRequestFailed, err.Error())
	}

	var env struct {
		Name             string            `json:"name"`
		CookbookVersions map[string]string `json:"cookbook_versions"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.EnvironmentRecord{}, zerr.Wrap(domain.ErrServerRequestFailed, err.Error())
	}

	return domain.EnvironmentRecord{RawName: env.Name, DeployedVersions: env.CookbookVersions}, nil
}

// ListVersions returns all versions of the cookbook. An unknown cookbook has no versions.
func (s *Server) ListVersions(ctx context.Context, name string) ([]string, error) {
	var res map[string]struct {
		Versions []struct {
			Version string `json:"version"`
		} `json:"versions"`
	}

	err := s.get(ctx, "cookbooks/"+url.PathEscape(name)+"?num_versions=all", &res)
	if isNotFound(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, zerr.With(requestFailed(err, "cannot list cookbook versions"), "cookbook", name)
	}

	entry := res[name]
	versions := make([]string, 0, len(entry.Versions))
	for _, v := range entry.Versions {
		versions = append(versions, v.Version)
	}
	return versions, nil
}

// FindCookbook fetches one cookbook version. A missing version is reported as not existing and not frozen.
func (s *Server) FindCookbook(ctx context.Context, name string, version domain.SemanticVersion) (domain.CookbookStatus, error) {
	var res struct {
		Frozen bool `json:"frozen?"`
	}

	err := s.get(ctx, "cookbooks/"+url.PathEscape(name)+"/"+version.String(), &res)
	if isNotFound(err) {
		return domain.CookbookStatus{}, nil
	}
	if err != nil {
		return domain.CookbookStatus{}, zerr.With(
			zerr.With(requestFailed(err, "cannot fetch cookbook"), "cookbook", name),
			"version", version.String(),
		)
	}

	return domain.CookbookStatus{Exists: true, Frozen: res.Frozen}, nil
}

// GetEnvironment returns the named environment.
func (s *Server) GetEnvironment(ctx context.Context, name string) (*domain.EnvironmentRecord, error) {
	env, err := s.getEnvironment(ctx, name)
	if err != nil {
		return nil, err
	}
	return &domain.EnvironmentRecord{RawName: env.Name, DeployedVersions: env.CookbookVersions}, nil
}

// SetCookbookVersions replaces the environment's cookbook_versions and saves it.
func (s *Server) SetCookbookVersions(ctx context.Context, name string, versions map[string]string) (map[string]string, error) {
	env, err := s.getEnvironment(ctx, name)
	if err != nil {
		return nil, err
	}

	env.CookbookVersions = versions
	saved, err := s.client.Environments.Put(env)
	if err != nil {
		return nil, zerr.With(requestFailed(err, "cannot save environment"), "environment", name)
	}
	return saved.CookbookVersions, nil
}

func (s *Server) getEnvironment(ctx context.Context, name string) (*gochef.Environment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := s.client.Environments.Get(name)
	if isNotFound(err) {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnvironmentNotFound, "no such environment on the server"), "environment", name)
	}
	if err != nil {
		return nil, zerr.With(requestFailed(err, "cannot fetch environment"), "environment", name)
	}
	return env, nil
}

// get issues a signed GET relative to the organization and decodes the JSON response into v.
func (s *Server) get(ctx context.Context, path string, v any) error {
	req, err := s.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	_, err = s.client.Do(req.WithContext(ctx), v)
	return err
}
