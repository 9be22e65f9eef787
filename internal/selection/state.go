// Package selection holds the selection state for a fixed list of issues.
//
// A State is a value. Every operation returns a new State and never modifies
// the one it was given, so a reader holding an older State never sees a
// partially applied change. Rows are index-aligned with the issue list the
// State was initialized from and stay that way for its lifetime.
package selection

import (
	"issuepick/internal/domain"
)

// Row is the per-issue selection flag
type Row struct {
	Checked bool
}

// Summary is derived from the rows after every transition
type Summary struct {
	TotalSelectedValue int
	CheckedCount       int
	EligibleCount      int
	AllSelected        bool
	Indeterminate      bool
}

// State is the selection state of one issue list
type State struct {
	issues  []domain.Issue
	rows    []Row
	summary Summary
}

// Len returns the number of rows
func (s State) Len() int {
	return len(s.rows)
}

// Issue returns the issue at index i
func (s State) Issue(i int) domain.Issue {
	return s.issues[i]
}

// Issues returns a copy of the issue list
func (s State) Issues() []domain.Issue {
	out := make([]domain.Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

// Rows returns a copy of the row flags
func (s State) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Checked reports whether row i is selected
func (s State) Checked(i int) bool {
	return s.rows[i].Checked
}

// Eligible reports whether row i can be selected
func (s State) Eligible(i int) bool {
	return s.issues[i].IsOpen()
}

// Summary returns the derived aggregate and tri-state flags
func (s State) Summary() Summary {
	return s.summary
}

// SelectedIssues returns the checked issues in list order
func (s State) SelectedIssues() []domain.Issue {
	var selected []domain.Issue
	for i, row := range s.rows {
		if row.Checked && s.issues[i].IsOpen() {
			selected = append(selected, s.issues[i])
		}
	}
	return selected
}

// Equal reports whether two states are observationally the same
func (s State) Equal(other State) bool {
	if len(s.rows) != len(other.rows) || len(s.issues) != len(other.issues) {
		return false
	}
	if s.summary != other.summary {
		return false
	}
	for i := range s.rows {
		if s.rows[i] != other.rows[i] || s.issues[i] != other.issues[i] {
			return false
		}
	}
	return true
}
