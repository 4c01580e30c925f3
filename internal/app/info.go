package app

import (
	"context"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/engine/release"
	"go.trai.ch/zerr"
)

// InfoOptions configures the Info method.
type InfoOptions struct {
	// WithVersions adds the pinned version to each environment and drops environments without a pin.
	WithVersions bool
}

// Report is everything the info command shows about a cookbook.
type Report struct {
	Cookbook     domain.Cookbook
	Frozen       bool
	Environments []domain.ResolvedEnvironment
	Production   []string
	Development  []string
}

// Info gathers the cookbook's server state: frozen status, environments and versions.
func (a *App) Info(ctx context.Context, opts Options, infoOpts InfoOptions) (*Report, error) {
	cookbook, err := a.Cookbook(opts)
	if err != nil {
		return nil, err
	}

	server, err := a.connect(opts)
	if err != nil {
		return nil, err
	}

	status, err := server.FindCookbook(ctx, cookbook.Identity.Name(), cookbook.Version)
	if err != nil {
		return nil, err
	}

	records, err := server.SearchEnvironments(ctx, cookbook.Identity)
	if err != nil {
		return nil, err
	}

	versions, err := server.ListVersions(ctx, cookbook.Identity.Name())
	if err != nil {
		return nil, err
	}

	production, development, err := release.Classify(versions)
	if err != nil {
		return nil, zerr.With(err, "cookbook", cookbook.Identity.Name())
	}

	return &Report{
		Cookbook:     cookbook,
		Frozen:       status.Frozen,
		Environments: release.ResolveEnvironments(cookbook.Identity, records, infoOpts.WithVersions),
		Production:   production,
		Development:  development,
	}, nil
}
