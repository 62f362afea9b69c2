// Package platform is the composition root: it wires repositories and the
// domain service together from functional options.
package platform

import (
	"log/slog"

	"github.com/okullo/notes/pkg/core"
)

// options holds the internal configuration for opening a vault.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	tagsNote   string
}

// Option defines a functional option for configuring the vault service.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		adapter: "fs",
	}
}

// WithLogger sets the logger for the service and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTagsNote sets the vault-relative name of the tag registry note.
// Defaults to core.DefaultTagsNote.
func WithTagsNote(name string) Option {
	return func(o *options) {
		o.tagsNote = name
	}
}

// WithRepository injects a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter selects the storage adapter by name. Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}
