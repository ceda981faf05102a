package events

import (
	"context"
	"sync"

	"github.com/NomadCrew/nomad-checklist-backend/types"
)

// MockPublisher implements types.EventPublisher for testing
type MockPublisher struct {
	mu     sync.RWMutex
	events map[string][]types.Event // key: checklistID
	order  []types.Event
	err    error
}

// NewMockPublisher creates a new mock publisher for testing
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		events: make(map[string][]types.Event),
	}
}

// Publish records an event for testing. When FailWith has been set the event
// is dropped and that error is returned.
func (m *MockPublisher) Publish(ctx context.Context, checklistID string, event types.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.events[checklistID] = append(m.events[checklistID], event)
	m.order = append(m.order, event)
	return nil
}

// FailWith makes every subsequent Publish return err.
func (m *MockPublisher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// GetEvents returns all events for a checklist (for testing assertions)
func (m *MockPublisher) GetEvents(checklistID string) []types.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.Event(nil), m.events[checklistID]...)
}

// Types returns the type of every recorded event in publish order.
func (m *MockPublisher) Types() []types.EventType {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.EventType, len(m.order))
	for i, e := range m.order {
		out[i] = e.Type
	}
	return out
}

// Reset clears all events (for test cleanup)
func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = make(map[string][]types.Event)
	m.order = nil
	m.err = nil
}
