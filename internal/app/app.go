// Package app implements the application layer for cheflow.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/cheflow/internal/engine/release"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	connector    ports.ServerConnector
	cookbooks    ports.CookbookLoader
	lockfiles    ports.LockfileEngine
	confirmer    ports.Confirmer
	logger       ports.Logger
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	connector ports.ServerConnector,
	cookbooks ports.CookbookLoader,
	lockfiles ports.LockfileEngine,
	confirmer ports.Confirmer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		connector:    connector,
		cookbooks:    cookbooks,
		lockfiles:    lockfiles,
		confirmer:    confirmer,
		logger:       log,
		getwd:        os.Getwd,
	}
}

// WithWorkingDir pins the directory cookbook discovery starts from.
// This is primarily used for testing.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Options are the settings shared by every command.
type Options struct {
	// ConfigPath is an explicit configuration file. Empty means search the default locations.
	ConfigPath string
	// Berksfile locates the cookbook. Empty means discover it from the working directory.
	Berksfile string
	// Verbose enables debug logging.
	Verbose bool
	// LogFormat overrides the configured log format when set.
	LogFormat string
}

// logSettings is implemented by loggers whose level and format can change at runtime.
type logSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ConfigureLogging applies the verbosity and format flags to the logger.
func (a *App) ConfigureLogging(opts Options) {
	ls, ok := a.logger.(logSettings)
	if !ok {
		return
	}
	ls.SetVerbose(opts.Verbose)
	if opts.LogFormat != "" {
		ls.SetJSON(opts.LogFormat == "json")
	}
}

// Cookbook reads the cookbook the command operates on.
func (a *App) Cookbook(opts Options) (domain.Cookbook, error) {
	root, err := a.cookbookRoot(opts)
	if err != nil {
		return domain.Cookbook{}, err
	}

	cookbook, err := a.cookbooks.Load(root)
	if err != nil {
		return domain.Cookbook{}, zerr.Wrap(err, "failed to read cookbook")
	}
	return cookbook, nil
}

func (a *App) cookbookRoot(opts Options) (string, error) {
	if opts.Berksfile != "" {
		abs, err := filepath.Abs(opts.Berksfile)
		if err != nil {
			return "", zerr.Wrap(err, "invalid Berksfile path")
		}
		return filepath.Dir(abs), nil
	}

	cwd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return a.cookbooks.DiscoverRoot(cwd)
}

// loadConfig loads the configuration and applies its log format unless a flag overrides it.
func (a *App) loadConfig(opts Options) (domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.LogFormat == "" {
		if ls, ok := a.logger.(logSettings); ok {
			ls.SetJSON(cfg.LogFormat == "json")
		}
	}
	return cfg, nil
}

// connect loads the configuration and opens the Chef server.
func (a *App) connect(opts Options) (ports.ChefServer, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return a.connector.Connect(cfg)
}

// Bump increments one field of the cookbook version and writes it to the VERSION file.
func (a *App) Bump(_ context.Context, opts Options, level string) (from, to domain.SemanticVersion, err error) {
	bumpLevel, err := domain.ParseBumpLevel(level)
	if err != nil {
		return from, to, err
	}

	cookbook, err := a.Cookbook(opts)
	if err != nil {
		return from, to, err
	}

	from = cookbook.Version
	to = domain.Bump(from, bumpLevel)

	if err := a.cookbooks.WriteVersion(cookbook.Path, to); err != nil {
		return from, to, zerr.With(err, "level", bumpLevel.String())
	}

	a.logger.Info(fmt.Sprintf("Bumped %s version from %s to %s", bumpLevel, from, to))
	return from, to, nil
}

// Upload sends the current cookbook version to the server, frozen for production versions.
func (a *App) Upload(ctx context.Context, opts Options) error {
	cookbook, err := a.Cookbook(opts)
	if err != nil {
		return err
	}

	server, err := a.connect(opts)
	if err != nil {
		return err
	}

	if err := release.NewUploader(a.logger).Upload(ctx, server, cookbook); err != nil {
		return err
	}

	msg := "Uploaded " + cookbook.String()
	if release.ShouldFreeze(cookbook.Version) {
		msg += " (frozen)"
	}
	a.logger.Info(msg)
	return nil
}

// Apply pins the environment labelled label to the versions in the cookbook's lockfile.
// Production asks for confirmation unless yes is set.
func (a *App) Apply(ctx context.Context, opts Options, label string, yes bool) (domain.LockTarget, error) {
	cookbook, err := a.Cookbook(opts)
	if err != nil {
		return domain.LockTarget{}, err
	}
	if !cookbook.Identity.IsNodeScoped() {
		err := zerr.Wrap(domain.ErrNotNodeCookbook, "only node cookbooks have environments")
		return domain.LockTarget{}, zerr.With(err, "cookbook", cookbook.Identity.Name())
	}

	// The lockfile name comes from the configuration unless a Berksfile was given.
	var cfg *domain.Config
	lockfile := opts.Berksfile + ".lock"
	if opts.Berksfile == "" {
		loaded, err := a.loadConfig(opts)
		if err != nil {
			return domain.LockTarget{}, err
		}
		cfg = &loaded
		lockfile = filepath.Join(cookbook.Path, loaded.Lockfile)
	}

	open := func() (ports.EnvironmentStore, error) {
		if cfg == nil {
			loaded, err := a.loadConfig(opts)
			if err != nil {
				return nil, err
			}
			cfg = &loaded
		}
		server, err := a.connector.Connect(*cfg)
		if err != nil {
			return nil, err
		}
		return server, nil
	}

	target, err := release.NewLockApplier(a.lockfiles, a.logger).Apply(ctx, open, release.ApplyRequest{
		Cookbook:     cookbook,
		LockfilePath: lockfile,
		Label:        label,
		Confirm:      a.confirm(yes),
	})
	if err != nil {
		return target, err
	}

	a.logger.Info(fmt.Sprintf("Applied %s to %s", filepath.Base(lockfile), target.FullEnvironmentName))
	return target, nil
}

func (a *App) confirm(yes bool) release.ConfirmFunc {
	return func(ctx context.Context, target domain.LockTarget) (bool, error) {
		if yes {
			return true, nil
		}
		question := fmt.Sprintf("Apply the lockfile to the %s environment (%s)?", target.EnvironmentLabel, target.FullEnvironmentName)
		return a.confirmer.Confirm(ctx, question)
	}
}
