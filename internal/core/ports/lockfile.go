package ports

import (
	"context"

	"go.trai.ch/cheflow/internal/core/domain"
)

// LockfileEngine reads lockfiles and applies them to environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileEngine interface {
	// Load reads the lockfile at path.
	// It returns domain.ErrLockfileNotFound when the file does not exist.
	Load(path string) (*domain.LockedGraph, error)

	// Apply pins the environment to the locked versions.
	// A false result without an error means the server did not accept the locks.
	Apply(ctx context.Context, store EnvironmentStore, graph *domain.LockedGraph, environment string) (bool, error)
}
