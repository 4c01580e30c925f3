package ports

import "go.trai.ch/cheflow/internal/core/domain"

// ConfigLoader defines the interface for loading the Chef server configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. An empty path searches the default locations.
	Load(path string) (domain.Config, error)
}
