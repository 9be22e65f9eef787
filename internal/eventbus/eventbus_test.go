package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		got <- e
	})

	b.Publish(SelectionChangedEvent{Index: 2, Total: 30})

	select {
	case e := <-got:
		ev, ok := e.(SelectionChangedEvent)
		require.True(t, ok)
		assert.Equal(t, 2, ev.Index)
		assert.Equal(t, 30, ev.Total)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var resets atomic.Int32
	b.Subscribe(EventSelectionReset, func(e DomainEvent) {
		resets.Add(1)
	})
	done := make(chan struct{})
	b.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		close(done)
	})

	b.Publish(SelectionChangedEvent{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Zero(t, resets.Load())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(e DomainEvent) {
		calls.Add(1)
	})
	unsubscribe()

	done := make(chan struct{})
	b.Subscribe(EventError, func(e DomainEvent) {
		close(done)
	})
	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(e DomainEvent) {
		panic("handler failure")
	})
	got := make(chan struct{}, 2)
	b.Subscribe(EventConfigSaved, func(e DomainEvent) {
		got <- struct{}{}
	})

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ConfigSavedEvent{Path: "x"})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("bus stopped after handler panic")
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := New()
	b.Close()

	assert.NotPanics(t, func() {
		b.Publish(ErrorEvent{Message: "late"})
		b.Close()
	})
}
