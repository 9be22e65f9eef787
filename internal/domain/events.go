package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIssuesLoaded     EventType = "IssuesLoaded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionReset   EventType = "SelectionReset"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IssuesLoadedEvent is emitted when an issue list has been (re)loaded from its source
type IssuesLoadedEvent struct {
	Source string
	Issues []Issue
}

func (e IssuesLoadedEvent) Type() EventType { return EventIssuesLoaded }

// SelectionChangedEvent is emitted after a toggle changed the selection.
// Index is the toggled row, or -1 when the select-all control was used.
type SelectionChangedEvent struct {
	Index         int
	All           bool
	Checked       bool
	Total         int
	CheckedCount  int
	EligibleCount int
	AllSelected   bool
	Indeterminate bool
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionResetEvent is emitted when the selection was rebuilt for a new issue list
type SelectionResetEvent struct {
	Rows          int
	EligibleCount int
}

func (e SelectionResetEvent) Type() EventType { return EventSelectionReset }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
