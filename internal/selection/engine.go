package selection

import (
	"errors"
	"fmt"

	"issuepick/internal/domain"
)

// ErrIndexOutOfRange is returned when a row index is not in the list
var ErrIndexOutOfRange = errors.New("row index out of range")

// Initialize builds a fresh state with every row unchecked
func Initialize(issues []domain.Issue) State {
	owned := make([]domain.Issue, len(issues))
	copy(owned, issues)

	s := State{
		issues: owned,
		rows:   make([]Row, len(owned)),
	}
	s.summary = summarize(s.issues, s.rows)
	return s
}

// ToggleRow flips the selection of one open row.
// Toggling a resolved row returns the state unchanged.
func ToggleRow(s State, index int) (State, error) {
	if index < 0 || index >= len(s.rows) {
		return s, fmt.Errorf("toggle row %d of %d: %w", index, len(s.rows), ErrIndexOutOfRange)
	}
	if !s.issues[index].IsOpen() {
		return s, nil
	}

	rows := make([]Row, len(s.rows))
	copy(rows, s.rows)
	rows[index].Checked = !rows[index].Checked

	return State{
		issues:  s.issues,
		rows:    rows,
		summary: summarize(s.issues, rows),
	}, nil
}

// ToggleAll sets every open row to checked and clears every resolved row
func ToggleAll(s State, checked bool) State {
	rows := make([]Row, len(s.issues))
	for i, issue := range s.issues {
		rows[i].Checked = checked && issue.IsOpen()
	}

	summary := summarize(s.issues, rows)
	// An explicit select-all is never partial. With nothing eligible the
	// control reads as fully selected either way.
	summary.AllSelected = checked || summary.EligibleCount == 0
	summary.Indeterminate = false

	return State{
		issues:  s.issues,
		rows:    rows,
		summary: summary,
	}
}

// summarize recomputes the aggregate and tri-state flags from scratch
func summarize(issues []domain.Issue, rows []Row) Summary {
	var sum Summary
	for i, issue := range issues {
		if !issue.IsOpen() {
			continue
		}
		sum.EligibleCount++
		if rows[i].Checked {
			sum.CheckedCount++
			sum.TotalSelectedValue += issue.Value
		}
	}
	sum.AllSelected = sum.CheckedCount == sum.EligibleCount
	sum.Indeterminate = sum.CheckedCount > 0 && sum.CheckedCount < sum.EligibleCount
	return sum
}
