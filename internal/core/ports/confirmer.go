package ports

import "context"

// Confirmer asks the operator a yes/no question.
//
//go:generate mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	// Confirm blocks until the operator answers. Only an explicit yes returns true.
	Confirm(ctx context.Context, question string) (bool, error)
}
