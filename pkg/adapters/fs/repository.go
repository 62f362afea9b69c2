// Package fs implements the note repository on top of a plain directory of
// markdown files, the way Obsidian and similar tools lay out a vault.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okullo/notes/pkg/core"
	"github.com/okullo/notes/pkg/markdown"
)

// Repository implements core.Repository over a vault directory.
type Repository struct {
	Path   string
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
	lastScan      time.Time
	lastScanNotes int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path   string
	Logger *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		Path:   filepath.Clean(config.Path),
		logger: logger,
	}
}

// Initialize verifies the vault directory exists. Vaults are user content
// and are never created implicitly.
func (r *Repository) Initialize(ctx context.Context) error {
	info, err := os.Stat(r.Path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", core.ErrVaultNotFound, r.Path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat vault: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path is not a directory: %s", r.Path)
	}
	return nil
}

// List walks the vault and parses every markdown note, sorted by name.
// Hidden files and directories (.git, .obsidian, .trash) are skipped, as is
// any note that fails to parse; one bad file must not break the listing.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	var notes []core.Note
	err := filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != r.Path && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(d.Name()) || filepath.Ext(d.Name()) != ".md" {
			return nil
		}
		note, err := r.load(path)
		if err != nil {
			r.logger.Warn("skipping unparseable note", "path", path, "error", err)
			return nil
		}
		notes = append(notes, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault: %w", err)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Name < notes[j].Name
	})

	r.mu.Lock()
	r.lastScan = time.Now()
	r.lastScanNotes = len(notes)
	r.mu.Unlock()

	return notes, nil
}

// Get reads and parses a single note by name.
func (r *Repository) Get(ctx context.Context, name string) (core.Note, error) {
	path := r.notePath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNoteNotFound, name)
	}
	return r.load(path)
}

// Save writes a note to disk atomically, creating parent directories as
// needed.
func (r *Repository) Save(ctx context.Context, note core.Note) error {
	data, err := markdown.ComposeNote(note)
	if err != nil {
		return fmt.Errorf("failed to compose note %s: %w", note.Name, err)
	}
	path := r.notePath(note.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create note directory: %w", err)
	}
	return writeFileAtomic(path, data, 0644)
}

func (r *Repository) load(path string) (core.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Note{}, err
	}
	meta, body, err := markdown.SplitFrontmatter(data)
	if err != nil {
		return core.Note{}, err
	}
	name, err := r.noteName(path)
	if err != nil {
		return core.Note{}, err
	}
	analysis := markdown.Analyze(body)
	return core.Note{
		Name:       name,
		Path:       path,
		Metadata:   meta,
		Content:    string(body),
		InlineTags: analysis.Tags,
		Tables:     analysis.Tables,
	}, nil
}

// notePath maps a note name to its file path inside the vault.
func (r *Repository) notePath(name string) string {
	return filepath.Join(r.Path, filepath.FromSlash(name)+".md")
}

// noteName maps a file path back to a vault-relative, slash-separated name.
func (r *Repository) noteName(path string) (string, error) {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), ".md"), nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)
