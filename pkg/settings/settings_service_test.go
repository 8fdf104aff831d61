package settings

import (
	"context"
	"testing"

	"github.com/expenzo/expenzo/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var repoStub = NewStubSettingsRepo()

var service Service

func setup(t *testing.T) (*event_bus.EventBus, func()) {
	bus := event_bus.NewEventBus()
	service = NewService(repoStub, bus)
	return bus, func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_SetSalary(t *testing.T) {
	t.Run("should persist and publish the new settings", func(t *testing.T) {
		bus, teardown := setup(t)
		defer teardown()

		var published Settings
		unsub := event_bus.SubscribeTyped[Settings](bus, EventSettingsChanged,
			func(e event_bus.EventT[Settings]) error {
				published = e.Data
				return nil
			})
		defer unsub()

		// when
		err := service.SetSalary(ctx, 5000)

		// then
		require.NoError(t, err)
		stored, err := service.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5000.0, stored.Salary)
		assert.Equal(t, 5000.0, published.Salary)
	})

	t.Run("should reject a negative salary", func(t *testing.T) {
		_, teardown := setup(t)
		defer teardown()

		// when
		err := service.SetSalary(ctx, -1)

		// then
		assert.Error(t, err)
		stored, _ := service.Get(ctx)
		assert.Equal(t, 0.0, stored.Salary)
	})
}
