// Package notes is the composition root for the notes tool.
//
// It connects the domain core (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) following a hexagonal layout: the core defines a
// Repository port and a Service exposing the vault operations, the
// adapter implements the port, and this package wires them together
// behind functional options.
//
// A vault is a plain directory of markdown files. Notes carry YAML
// front-matter, inline #tags and pipe tables; a designated registry
// note groups tags and assigns each group a stylesheet color.
//
// Usage:
//
//	svc, err := notes.New("./vault",
//		notes.WithTagsNote("meta/Tags"),
//		notes.WithLogger(logger),
//	)
//
//	matched, err := svc.Notes(ctx, "journal")
package notes
