package release

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/zerr"
)

// OpenStoreFunc connects to the server holding the environments.
type OpenStoreFunc func() (ports.EnvironmentStore, error)

// ConfirmFunc asks the operator to confirm a change to the target environment.
type ConfirmFunc func(ctx context.Context, target domain.LockTarget) (bool, error)

// ApplyRequest describes one lockfile application.
type ApplyRequest struct {
	Cookbook     domain.Cookbook
	LockfilePath string
	Label        string
	Confirm      ConfirmFunc
}

// LockApplier pins a node environment to the versions of a cookbook's lockfile.
type LockApplier struct {
	engine ports.LockfileEngine
	logger ports.Logger
}

// NewLockApplier creates a new LockApplier.
func NewLockApplier(engine ports.LockfileEngine, logger ports.Logger) *LockApplier {
	return &LockApplier{engine: engine, logger: logger}
}

// Apply checks the preconditions, asks for confirmation when the target is production and
// hands the locks to the lockfile engine. The server is opened only after the local checks
// and the confirmation have passed. Every failure is terminal; nothing is retried.
func (a *LockApplier) Apply(ctx context.Context, open OpenStoreFunc, req ApplyRequest) (domain.LockTarget, error) {
	identity := req.Cookbook.Identity

	// 1. Only node cookbooks own environments
	if !identity.IsNodeScoped() {
		err := zerr.Wrap(domain.ErrNotNodeCookbook, "locks can only be applied by node cookbooks")
		return domain.LockTarget{}, zerr.With(err, "cookbook", identity.Name())
	}

	// 2. Read the lockfile before talking to the server
	graph, err := a.engine.Load(req.LockfilePath)
	if err != nil {
		return domain.LockTarget{}, err
	}

	// 3. Resolve the server environment name
	target, err := domain.NewLockTarget(identity, req.Label)
	if err != nil {
		return domain.LockTarget{}, err
	}

	// 4. Production needs an explicit yes
	if target.IsProduction() {
		ok, err := req.Confirm(ctx, target)
		if err != nil {
			return target, zerr.Wrap(err, "confirmation failed")
		}
		if !ok {
			aborted := zerr.Wrap(domain.ErrUserAborted, "lockfile was not applied")
			return target, zerr.With(aborted, "environment", target.FullEnvironmentName)
		}
	}

	// 5. Connect
	store, err := open()
	if err != nil {
		return target, err
	}

	// 6. Apply
	a.logger.Info(fmt.Sprintf("applying %d locked cookbooks to %s", len(graph.Locks), target.FullEnvironmentName))
	applied, err := a.engine.Apply(ctx, store, graph, target.FullEnvironmentName)
	switch {
	case errors.Is(err, domain.ErrEnvironmentNotFound):
		return target, zerr.With(zerr.Wrap(err, "cannot apply lockfile"), "environment", target.FullEnvironmentName)
	case err != nil:
		applyErr := zerr.With(zerr.Wrap(domain.ErrApplyFailed, err.Error()), "environment", target.FullEnvironmentName)
		return target, applyErr
	case !applied:
		rejected := zerr.Wrap(domain.ErrApplyFailed, "server did not accept the locked versions")
		return target, zerr.With(rejected, "environment", target.FullEnvironmentName)
	}

	return target, nil
}
