package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState is the introspection snapshot of a Repository.
type RepositoryState struct {
	Path          string     `json:"path"`
	WatcherActive bool       `json:"watcher_active"`
	LastScan      *time.Time `json:"last_scan,omitempty"`
	LastScanNotes int        `json:"last_scan_notes"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := RepositoryState{
		Path:          r.Path,
		WatcherActive: r.watcherActive,
		LastScanNotes: r.lastScanNotes,
	}
	if !r.lastScan.IsZero() {
		scan := r.lastScan
		state.LastScan = &scan
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "vault.fs"
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	r.watcherActive = active
	r.mu.Unlock()
}

var (
	_ introspection.Introspectable = (*Repository)(nil)
	_ introspection.Component      = (*Repository)(nil)
)
