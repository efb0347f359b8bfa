package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/flareops/flarenode/pkg/channels/gochannel"
	"github.com/flareops/flarenode/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillEventBus_PublishAndHandle(t *testing.T) {
	pub, sub, err := gochannel.CreateChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := NewWatermillEventBus(pub, sub)
	defer func() { _ = bus.Close() }()

	received := make(chan *events.NodeExecutionFinished, 1)

	require.NoError(t, bus.Handle(events.NodeExecutionFinishedEvent, func(_ context.Context, event Event) error {
		received <- event.(*events.NodeExecutionFinished)

		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bus.Subscribe(ctx))

	err = bus.Publish(ctx, "exec-1", events.NodeExecutionFinished{
		BaseEvent:   events.NewBaseEvent(events.NodeExecutionFinishedEvent, ""),
		ExecutionID: "exec-1",
		NodeID:      "prices",
		Resource:    "priceFeeds",
		Operation:   "getCurrentPrices",
		ItemCount:   3,
		FailedItems: 1,
	})
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, "exec-1", event.ExecutionID)
		assert.Equal(t, 3, event.ItemCount)
		assert.Equal(t, 1, event.FailedItems)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestWatermillEventBus_GenerateID(t *testing.T) {
	pub, sub, err := gochannel.CreateChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := NewWatermillEventBus(pub, sub)
	defer func() { _ = bus.Close() }()

	assert.NotEmpty(t, bus.GenerateID())
	assert.NotEqual(t, bus.GenerateID(), bus.GenerateID())
}

func TestDecode(t *testing.T) {
	event, err := Decode(events.NodeExecutionFailedEvent, []byte(`{"execution_id":"exec-2","item_index":4,"error_kind":"remote_api"}`))
	require.NoError(t, err)

	failed, ok := event.(*events.NodeExecutionFailed)
	require.True(t, ok)
	assert.Equal(t, "exec-2", failed.ExecutionID)
	assert.Equal(t, 4, failed.ItemIndex)
	assert.Equal(t, events.NodeExecutionFailedEvent, failed.GetType())

	_, err = Decode("workflow.triggered", []byte(`{}`))
	require.ErrorIs(t, err, ErrUnknownEventType)

	_, err = Decode(events.NodeExecutionFinishedEvent, []byte(`{"item_count":"three"}`))
	assert.ErrorContains(t, err, "failed to decode node.execution.finished event")
}
