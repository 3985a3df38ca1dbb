package events

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversPublishedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(slog.Default())
	defer bus.Close()

	received, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	want := EntityEvent{Collection: "students", Action: ActionCreated, EntityID: "s9"}
	require.NoError(t, bus.Publish(ctx, want))

	select {
	case got := <-received:
		assert.Equal(t, "students", got.Collection)
		assert.Equal(t, ActionCreated, got.Action)
		assert.Equal(t, "s9", got.EntityID)
		assert.False(t, got.OccurredAt.IsZero(), "publish must stamp OccurredAt")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for entity event")
	}
}

func TestMockPublisherRecordsEvents(t *testing.T) {
	ctx := context.Background()
	mock := NewMockPublisher()

	require.NoError(t, mock.Publish(ctx, EntityEvent{Collection: "attendance_records", Action: ActionMarked, EntityID: "a1"}))
	require.NoError(t, mock.Publish(ctx, EntityEvent{Collection: "sections", Action: ActionDeleted, EntityID: "sec1"}))

	got := mock.PublishedEvents()
	require.Len(t, got, 2)
	assert.Equal(t, ActionMarked, got[0].Action)
	assert.Equal(t, "sec1", got[1].EntityID)
}
