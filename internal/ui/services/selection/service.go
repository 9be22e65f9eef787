package selection

import (
	"sync"

	"issuepick/internal/domain"
	engine "issuepick/internal/selection"
)

// Service owns the live selection state for the issue list on screen.
// Each gesture replaces the state as a whole.
type Service struct {
	mu    sync.RWMutex
	state engine.State
	bus   Publisher
}

// NewService creates a service with an empty issue list
func NewService(bus Publisher) *Service {
	if bus == nil {
		bus = NullPublisher{}
	}
	return &Service{
		state: engine.Initialize(nil),
		bus:   bus,
	}
}

// Load discards the current selection and starts over for a new issue list
func (s *Service) Load(issues []domain.Issue) {
	next := engine.Initialize(issues)

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	s.bus.Publish(domain.SelectionResetEvent{
		Rows:          next.Len(),
		EligibleCount: next.Summary().EligibleCount,
	})
}

// State returns the current selection state
func (s *Service) State() engine.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Summary returns the current aggregate and tri-state flags
func (s *Service) Summary() engine.Summary {
	return s.State().Summary()
}

// ToggleRow toggles the row at index. Resolved rows are ignored.
func (s *Service) ToggleRow(index int) error {
	s.mu.Lock()
	prev := s.state
	next, err := engine.ToggleRow(prev, index)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.mu.Unlock()

	if prev.Equal(next) {
		return nil
	}
	s.publish(index, false, next.Checked(index), next.Summary())
	return nil
}

// ToggleAll sets every open row to checked
func (s *Service) ToggleAll(checked bool) {
	s.mu.Lock()
	prev := s.state
	next := engine.ToggleAll(prev, checked)
	s.state = next
	s.mu.Unlock()

	if prev.Equal(next) {
		return
	}
	s.publish(-1, true, checked, next.Summary())
}

// ToggleAllFromControl behaves like clicking the select-all checkbox
func (s *Service) ToggleAllFromControl() {
	s.ToggleAll(!s.Summary().AllSelected)
}

// Clear deselects every row
func (s *Service) Clear() {
	s.ToggleAll(false)
}

// HasSelection returns true if any row is checked
func (s *Service) HasSelection() bool {
	return s.Summary().CheckedCount > 0
}

func (s *Service) publish(index int, all, checked bool, sum engine.Summary) {
	s.bus.Publish(domain.SelectionChangedEvent{
		Index:         index,
		All:           all,
		Checked:       checked,
		Total:         sum.TotalSelectedValue,
		CheckedCount:  sum.CheckedCount,
		EligibleCount: sum.EligibleCount,
		AllSelected:   sum.AllSelected,
		Indeterminate: sum.Indeterminate,
	})
}
