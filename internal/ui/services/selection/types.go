package selection

import (
	"issuepick/internal/domain"
)

// Publisher receives selection events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// NullPublisher is a no-op implementation of Publisher
type NullPublisher struct{}

func (NullPublisher) Publish(event domain.DomainEvent) {}
