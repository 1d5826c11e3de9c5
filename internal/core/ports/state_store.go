package ports

import "context"

// StateStore defines the interface for small persisted flags that survive
// process restarts.
//
//go:generate mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// GetBool retrieves the flag stored under key.
	// Returns false, nil if the key has never been set.
	GetBool(ctx context.Context, key string) (bool, error)

	// SetBool stores the flag under key.
	SetBool(ctx context.Context, key string, value bool) error
}
