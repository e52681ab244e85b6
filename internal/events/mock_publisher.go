package events

import (
	"context"
	"log/slog"
	"sync"
)

// PublishedEvent records one publish call for assertions.
type PublishedEvent struct {
	Topic string
	Event Event
}

// MockEventPublisher records published events for tests.
type MockEventPublisher struct {
	mu     sync.Mutex
	logger *slog.Logger
	events []PublishedEvent
	closed bool
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(_ context.Context, topic string, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{Topic: topic, Event: event})
	if m.logger != nil {
		m.logger.Debug("mock event published", "topic", topic, "type", event.Type)
	}
	return nil
}

func (m *MockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// GetPublishedEvents returns a copy of everything published so far.
func (m *MockEventPublisher) GetPublishedEvents() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}
