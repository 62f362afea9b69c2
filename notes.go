package notes

import (
	"log/slog"

	"github.com/okullo/notes/internal/platform"
	"github.com/okullo/notes/pkg/core"
)

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service and its repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithTagsNote sets the name of the tag registry note.
func WithTagsNote(name string) Option {
	return platform.WithTagsNote(name)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// New opens the vault at path and returns a Service for it.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}
