package core

import "context"

// Repository defines the port for note storage backends.
type Repository interface {
	// Initialize prepares the backend and verifies the vault is reachable.
	Initialize(ctx context.Context) error

	// List returns every note in the vault, sorted by name.
	List(ctx context.Context) ([]Note, error)

	// Get retrieves a single note by name.
	Get(ctx context.Context, name string) (Note, error)

	// Save persists a note, creating or replacing it.
	Save(ctx context.Context, note Note) error
}

// Watchable is implemented by repositories that can emit change events.
type Watchable interface {
	// Watch emits an event for every note change until ctx is cancelled.
	// The returned channel is closed when watching stops.
	Watch(ctx context.Context) (<-chan Event, error)
}
