// Package events publishes entity-change notifications after successful
// mutations. Views re-fetch to refresh derived state; subscribing to
// these events tells them when. Transport is watermill's in-process
// gochannel Pub/Sub; there is no network broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const TopicEntityChanged = "attendance.entity-changed"

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionMarked  Action = "marked"
)

type EntityEvent struct {
	Collection string    `json:"collection"`
	Action     Action    `json:"action"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event EntityEvent) error
	Close() error
}

// ===== GOCHANNEL BUS =====

// Bus is the watermill-backed publisher plus a typed subscribe side for
// dashboard callers.
type Bus struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &Bus{pubSub: pubSub, logger: logger}
}

func (b *Bus) Publish(_ context.Context, event EntityEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode entity event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubSub.Publish(TopicEntityChanged, msg); err != nil {
		return fmt.Errorf("failed to publish entity event: %w", err)
	}
	return nil
}

// Subscribe delivers decoded entity events until ctx is cancelled or the
// bus is closed.
func (b *Bus) Subscribe(ctx context.Context) (<-chan EntityEvent, error) {
	messages, err := b.pubSub.Subscribe(ctx, TopicEntityChanged)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to entity events: %w", err)
	}

	out := make(chan EntityEvent)
	go func() {
		defer close(out)
		for msg := range messages {
			var event EntityEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				b.logger.Error("dropping malformed entity event", "error", err)
				msg.Ack()
				continue
			}
			msg.Ack()
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// ===== NOP PUBLISHER =====

// NopPublisher is for callers that do not care about change events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, EntityEvent) error { return nil }
func (NopPublisher) Close() error                               { return nil }

// ===== MOCK PUBLISHER =====

// MockPublisher records published events for assertions in tests.
type MockPublisher struct {
	mu     sync.Mutex
	events []EntityEvent
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(_ context.Context, event EntityEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockPublisher) Close() error { return nil }

func (m *MockPublisher) PublishedEvents() []EntityEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EntityEvent, len(m.events))
	copy(out, m.events)
	return out
}
