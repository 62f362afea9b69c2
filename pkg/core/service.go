package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultTagsNote is the vault-relative name of the tag registry note.
const DefaultTagsNote = "meta/Tags"

// Service provides the core note management operations.
type Service struct {
	repo     Repository
	tagsNote string
	logger   *slog.Logger

	mu       sync.RWMutex
	registry *TagRegistry
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTagsNote sets the name of the note holding the tag registry.
func WithTagsNote(name string) ServiceOption {
	return func(s *Service) {
		if name != "" {
			s.tagsNote = name
		}
	}
}

// WithServiceLogger sets the logger used by the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a new note service backed by the given repository.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:     repo,
		tagsNote: DefaultTagsNote,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TagsNoteName returns the name of the tag registry note.
func (s *Service) TagsNoteName() string {
	return s.tagsNote
}

// Notes returns the notes whose names match pattern. A note matches either
// because it lives under a directory matching the pattern or because its name
// matches directly; subtree matches are listed before direct ones. An empty
// pattern matches everything.
func (s *Service) Notes(ctx context.Context, pattern string) ([]Note, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var subtree, direct []Note
	seen := make(map[string]bool, len(all))
	for _, note := range all {
		ok, err := doublestar.Match(pattern+"/**/*", note.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
		}
		if ok {
			subtree = append(subtree, note)
			seen[note.Name] = true
		}
	}
	for _, note := range all {
		if seen[note.Name] {
			continue
		}
		ok, err := doublestar.Match(pattern, note.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
		}
		if ok {
			direct = append(direct, note)
		}
	}
	return append(subtree, direct...), nil
}

// Note retrieves a single note by name. Leading slashes and a trailing ".md"
// are tolerated so shell completions and raw paths both work.
func (s *Service) Note(ctx context.Context, name string) (Note, error) {
	return s.repo.Get(ctx, CleanName(name))
}

// NotesByTag returns all notes carrying the given tag, sorted by name.
func (s *Service) NotesByTag(ctx context.Context, tag string) ([]Note, error) {
	tag = strings.TrimPrefix(tag, "#")
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var matched []Note
	for _, note := range all {
		if note.HasTag(tag) {
			matched = append(matched, note)
		}
	}
	return matched, nil
}

// Tags returns every distinct tag used by notes matching pattern, resolved
// against the registry for group membership and sorted by name.
func (s *Service) Tags(ctx context.Context, pattern string) ([]Tag, error) {
	notes, err := s.Notes(ctx, pattern)
	if err != nil {
		return nil, err
	}
	registry, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []Tag
	for _, note := range notes {
		for _, name := range note.TagNames() {
			if seen[name] {
				continue
			}
			seen[name] = true
			tags = append(tags, Tag{Name: name, Group: registry.GroupOf(name)})
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

// StylesheetTags returns the tags a stylesheet for pattern should cover.
// For the whole vault the registry tags come first, in registry order,
// followed by any tags in use that the registry does not know. For narrower
// patterns only the tags of the matching notes are returned.
func (s *Service) StylesheetTags(ctx context.Context, pattern string) ([]Tag, error) {
	if pattern == "" {
		pattern = "*"
	}
	if pattern != "*" {
		return s.Tags(ctx, pattern)
	}

	registry, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	inUse, err := s.Tags(ctx, pattern)
	if err != nil {
		return nil, err
	}

	tags := make([]Tag, 0, registry.Len()+len(inUse))
	seen := make(map[string]bool, registry.Len())
	for _, tag := range registry.Tags() {
		if seen[tag.Name] {
			continue
		}
		seen[tag.Name] = true
		tags = append(tags, tag)
	}
	for _, tag := range inUse {
		if seen[tag.Name] {
			continue
		}
		seen[tag.Name] = true
		tags = append(tags, tag)
	}
	return tags, nil
}

// Registry loads and caches the tag registry. A missing registry note is not
// an error; it yields an empty registry.
func (s *Service) Registry(ctx context.Context) (*TagRegistry, error) {
	s.mu.RLock()
	registry := s.registry
	s.mu.RUnlock()
	if registry != nil {
		return registry, nil
	}

	note, err := s.repo.Get(ctx, s.tagsNote)
	if err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			return nil, err
		}
		s.logger.Debug("tags note not found, using empty registry", "note", s.tagsNote)
		registry = ParseRegistry(nil)
	} else {
		if len(note.Tables) < 2 {
			s.logger.Debug("tags note has fewer than two tables", "note", s.tagsNote, "tables", len(note.Tables))
		}
		registry = ParseRegistry(note.Tables)
	}

	s.mu.Lock()
	s.registry = registry
	s.mu.Unlock()
	return registry, nil
}

// Refresh drops cached state so the next call observes the vault afresh.
func (s *Service) Refresh() {
	s.mu.Lock()
	s.registry = nil
	s.mu.Unlock()
}

// CreateOptions controls how Create fills in a new note.
type CreateOptions struct {
	Title string
	State State
	Tags  []string
	Force bool
}

// Create writes a new note with front-matter seeded from opts. Unless Force
// is set, an existing note with the same name is left untouched and
// ErrNoteExists is returned.
func (s *Service) Create(ctx context.Context, name string, opts CreateOptions) (Note, error) {
	name = CleanName(name)
	if name == "" {
		return Note{}, fmt.Errorf("note name must not be empty")
	}

	state := opts.State
	if state == "" {
		state = StateStub
	}
	if !state.Valid() {
		return Note{}, fmt.Errorf("invalid state %q, expected one of %v", state, States)
	}

	if !opts.Force {
		if _, err := s.repo.Get(ctx, name); err == nil {
			return Note{}, fmt.Errorf("%w: %s", ErrNoteExists, name)
		} else if !errors.Is(err, ErrNoteNotFound) {
			return Note{}, err
		}
	}

	title := opts.Title
	if title == "" {
		title = path.Base(name)
	}

	meta := Metadata{
		"title": title,
		"date":  time.Now().Format("2006-01-02"),
		"state": string(state),
	}
	if len(opts.Tags) > 0 {
		tags := make([]string, 0, len(opts.Tags))
		for _, tag := range opts.Tags {
			tags = append(tags, strings.TrimPrefix(tag, "#"))
		}
		meta["tags"] = tags
	}

	note := Note{
		Name:     name,
		Metadata: meta,
		Content:  "# " + title + "\n",
	}
	if err := s.repo.Save(ctx, note); err != nil {
		return Note{}, err
	}
	// Re-read so the caller sees the note exactly as persisted, including
	// the repository's idea of its path.
	return s.repo.Get(ctx, name)
}

// Stats summarizes the vault for status reporting.
func (s *Service) Stats(ctx context.Context) (VaultStats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return VaultStats{}, err
	}

	stats := VaultStats{
		Notes:    len(all),
		States:   make(map[State]int),
		TagsNote: s.tagsNote,
	}
	seen := make(map[string]bool)
	for _, note := range all {
		stats.States[note.State()]++
		if note.Name == s.tagsNote {
			stats.TagsNoteSeen = true
		}
		for _, name := range note.TagNames() {
			seen[name] = true
		}
	}
	stats.Tags = len(seen)
	return stats, nil
}

// Watch emits vault change events if the repository supports watching.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	watchable, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return watchable.Watch(ctx)
}

// CleanName normalizes a user-supplied note name, trimming path separators
// and a trailing ".md" extension.
func CleanName(name string) string {
	name = strings.Trim(name, "/")
	return strings.TrimSuffix(name, ".md")
}
