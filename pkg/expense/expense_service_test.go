package expense

import (
	"context"
	"testing"
	"time"

	"github.com/expenzo/expenzo/internal/event_bus"
	"github.com/expenzo/expenzo/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var repoStub = NewStubExpenseRepo()

var service Service

func setup(t *testing.T) (*event_bus.EventBus, func()) {
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)}
	service = NewService(repoStub, bus, clock)
	return bus, func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should stamp the date from the clock's local day", func(t *testing.T) {
		_, teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, "Coffee", 50, TypeFood)

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Coffee", created.Name)
		assert.Equal(t, 50.0, created.Amount)
		assert.Equal(t, "2025-03-14", created.Date)
		assert.Equal(t, TypeFood, created.Type)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		_, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, "", 50, TypeFood)

		// then
		assert.Error(t, err)
		stored, _ := repoStub.GetAll(ctx)
		assert.Empty(t, stored)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		_, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, "Coffee", -1, TypeFood)

		// then
		assert.Error(t, err)
	})

	t.Run("should reject a type outside the closed set", func(t *testing.T) {
		_, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, "Coffee", 50, ExpenseType("Travel"))

		// then
		assert.Error(t, err)
	})

	t.Run("should publish the full snapshot after a create", func(t *testing.T) {
		bus, teardown := setup(t)
		defer teardown()

		var snapshot []Expense
		unsub := event_bus.SubscribeTyped[[]Expense](bus, EventExpensesChanged,
			func(e event_bus.EventT[[]Expense]) error {
				snapshot = e.Data
				return nil
			})
		defer unsub()

		// when
		_, err := service.Create(ctx, "Coffee", 50, TypeFood)
		require.NoError(t, err)

		// then
		assert.Len(t, snapshot, 1)
		assert.Equal(t, "Coffee", snapshot[0].Name)
	})
}

func TestServiceImpl_Remove(t *testing.T) {
	t.Run("should remove an existing expense", func(t *testing.T) {
		_, teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, "Coffee", 50, TypeFood)
		require.NoError(t, err)

		// when
		err = service.Remove(ctx, created.ID)

		// then
		assert.NoError(t, err)
		stored, _ := repoStub.GetAll(ctx)
		assert.Empty(t, stored)
	})

	t.Run("should report a missing expense", func(t *testing.T) {
		_, teardown := setup(t)
		defer teardown()

		// when
		err := service.Remove(ctx, "no-such-id")

		// then
		assert.ErrorIs(t, err, ErrExpenseNotFound)
	})
}
