package platform

import (
	"context"
	"fmt"

	"github.com/okullo/notes/pkg/adapters/fs"
	"github.com/okullo/notes/pkg/core"
)

// New opens the vault at path and wires up the domain service.
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	svcOpts := []core.ServiceOption{core.WithTagsNote(o.tagsNote)}
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithServiceLogger(o.logger))
	}

	return core.NewService(repo, svcOpts...), nil
}

// Init builds and initializes the repository for the vault at path.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	switch o.adapter {
	case "fs":
		repo = fs.NewRepository(fs.Config{Path: path, Logger: o.logger})
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}
