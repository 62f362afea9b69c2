package core

import "errors"

// Common errors.
var (
	// ErrVaultNotFound indicates the vault directory does not exist.
	ErrVaultNotFound = errors.New("vault directory not found")

	// ErrNoteNotFound indicates the requested note does not exist in the vault.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteExists indicates a note with the given name already exists.
	ErrNoteExists = errors.New("note already exists")

	// ErrWatchUnsupported indicates the repository cannot emit change events.
	ErrWatchUnsupported = errors.New("repository does not support watching")
)
