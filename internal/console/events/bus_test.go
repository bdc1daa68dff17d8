package events

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/placementdesk/internal/logging"
)

func receive(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		require.True(t, ok, "channel closed")
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}
	return Change{}
}

func TestBus_PublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(logging.Nop())
	t.Cleanup(func() { _ = bus.Close() })

	ch, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	at := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
	want := Change{
		Operation:   "select_applicant",
		Collections: []string{"applicants", "selected"},
		ReferenceID: "1",
		OccurredAt:  at,
	}
	require.NoError(t, bus.Publish(ctx, want))

	got := receive(t, ch)
	require.Equal(t, want.Operation, got.Operation)
	require.Equal(t, want.Collections, got.Collections)
	require.Equal(t, want.ReferenceID, got.ReferenceID)
	require.True(t, at.Equal(got.OccurredAt))
}

func TestBus_SkipsUndecodablePayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(logging.Nop())
	t.Cleanup(func() { _ = bus.Close() })

	ch, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.pubSub.Publish(Topic, message.NewMessage("bad", []byte("{"))))
	require.NoError(t, bus.Publish(ctx, Change{Operation: "send_message"}))

	got := receive(t, ch)
	require.Equal(t, "send_message", got.Operation)
}

func TestBus_SubscriptionEndsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	bus := NewBus(logging.Nop())
	t.Cleanup(func() { _ = bus.Close() })

	ch, err := bus.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestBus_PublishAfterClose(t *testing.T) {
	bus := NewBus(logging.Nop())
	require.NoError(t, bus.Close())

	err := bus.Publish(context.Background(), Change{Operation: "x"})
	require.Error(t, err)
}
