package ports

import "go.trai.ch/cheflow/internal/core/domain"

// CookbookLoader reads cookbooks from disk and updates their VERSION file.
//
//go:generate mockgen -source=cookbook.go -destination=mocks/mock_cookbook.go -package=mocks
type CookbookLoader interface {
	// DiscoverRoot walks up from cwd to the directory holding the cookbook metadata.
	DiscoverRoot(cwd string) (string, error)

	// Load reads the cookbook name and current version from dir.
	Load(dir string) (domain.Cookbook, error)

	// WriteVersion replaces the content of the VERSION file in dir.
	// It returns domain.ErrVersionFileNotFound when the file does not exist.
	WriteVersion(dir string, version domain.SemanticVersion) error
}
