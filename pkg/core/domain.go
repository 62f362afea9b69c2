package core

import "time"

// EventType represents the type of change observed in the vault.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note while watching the vault.
type Event struct {
	Type EventType
	Name string
	At   time.Time
}

// VaultStats summarizes a vault for status reporting.
type VaultStats struct {
	Notes        int           `json:"notes"`
	Tags         int           `json:"tags"`
	States       map[State]int `json:"states"`
	TagsNote     string        `json:"tags_note"`
	TagsNoteSeen bool          `json:"tags_note_found"`
}
