// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cheflow/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=chef_server.go -destination=mocks/mock_chef_server.go -package=mocks

// EnvironmentStore reads and updates environments on the Chef server.
type EnvironmentStore interface {
	// GetEnvironment returns the named environment.
	// It returns domain.ErrEnvironmentNotFound when the environment does not exist.
	GetEnvironment(ctx context.Context, name string) (*domain.EnvironmentRecord, error)

	// SetCookbookVersions replaces the cookbook version constraints of the named environment
	// and returns the constraints as saved by the server.
	SetCookbookVersions(ctx context.Context, name string, versions map[string]string) (map[string]string, error)
}

// CookbookUploader uploads a cookbook from disk.
type CookbookUploader interface {
	// UploadCookbook uploads the cookbook at its path, marking the version frozen when freeze is set.
	// It returns domain.ErrFrozenCookbookConflict when the version already exists and is frozen.
	UploadCookbook(ctx context.Context, cookbook domain.Cookbook, freeze bool) error
}

// ChefServer is the remote configuration server.
type ChefServer interface {
	EnvironmentStore
	CookbookUploader

	// SearchEnvironments returns the environments related to the cookbook.
	// Node cookbooks match environments by name prefix, other cookbooks by pinned cookbook version.
	SearchEnvironments(ctx context.Context, cookbook domain.CookbookIdentity) ([]domain.EnvironmentRecord, error)

	// ListVersions returns every version of the cookbook known to the server.
	ListVersions(ctx context.Context, name string) ([]string, error)

	// FindCookbook reports whether a cookbook version exists and whether it is frozen.
	FindCookbook(ctx context.Context, name string, version domain.SemanticVersion) (domain.CookbookStatus, error)
}

// ServerConnector opens a ChefServer from the configuration.
type ServerConnector interface {
	Connect(cfg domain.Config) (ChefServer, error)
}
