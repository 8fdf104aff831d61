package event_bus

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_SubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()

	var received []any
	unsub := bus.Subscribe("test.event", func(e Event) error {
		received = append(received, e.Data)
		return nil
	})
	defer unsub()

	err := bus.Publish(NewEvent(context.Background(), "test.event", "payload"))

	require.NoError(t, err)
	assert.Equal(t, []any{"payload"}, received)
}

func TestEventBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	unsub := bus.Subscribe("test.event", func(e Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(NewEvent(context.Background(), "test.event", nil)))
	unsub()
	require.NoError(t, bus.Publish(NewEvent(context.Background(), "test.event", nil)))

	assert.Equal(t, 1, calls)
}

func TestSubscribeTyped(t *testing.T) {
	t.Run("delivers matching payloads", func(t *testing.T) {
		bus := NewEventBus()

		var received []int
		unsub := SubscribeTyped[int](bus, "test.event", func(e EventT[int]) error {
			received = append(received, e.Data)
			return nil
		})
		defer unsub()

		require.NoError(t, bus.Publish(NewEvent(context.Background(), "test.event", 42)))

		assert.Equal(t, []int{42}, received)
	})

	t.Run("skips payloads of the wrong type", func(t *testing.T) {
		bus := NewEventBus()

		calls := 0
		unsub := SubscribeTyped[int](bus, "test.event", func(e EventT[int]) error {
			calls++
			return nil
		})
		defer unsub()

		require.NoError(t, bus.Publish(NewEvent(context.Background(), "test.event", "not an int")))

		assert.Equal(t, 0, calls)
	})
}

func TestEventBus_Publish_CollectsHandlerErrors(t *testing.T) {
	bus := NewEventBus()

	boom := fmt.Errorf("boom")
	unsub1 := bus.Subscribe("test.event", func(e Event) error { return boom })
	defer unsub1()
	calls := 0
	unsub2 := bus.Subscribe("test.event", func(e Event) error {
		calls++
		return nil
	})
	defer unsub2()

	err := bus.Publish(NewEvent(context.Background(), "test.event", nil))

	// a failing handler does not stop the others
	assert.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestEventBus_Publish_RecoversPanics(t *testing.T) {
	bus := NewEventBus()

	unsub := bus.Subscribe("test.event", func(e Event) error { panic("handler blew up") })
	defer unsub()

	err := bus.Publish(NewEvent(context.Background(), "test.event", nil))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "handler panic")
}
