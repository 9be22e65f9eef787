package domain

import "fmt"

// Status is the lifecycle state of an issue
type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

// ParseStatus converts a raw status string into a Status
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusResolved:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown issue status %q", s)
}

// Label returns the display label for the status
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusResolved:
		return "Resolved"
	}
	return string(s)
}

// Issue represents a single issue record shown in the list
type Issue struct {
	ID        string
	Name      string
	Message   string // may contain markdown
	Status    Status
	NumEvents int
	NumUsers  int
	Value     int // counted toward the selected total
}

// IsOpen reports whether the issue can be selected
func (i Issue) IsOpen() bool {
	return i.Status == StatusOpen
}
