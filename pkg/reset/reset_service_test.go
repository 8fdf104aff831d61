package reset

import (
	"context"
	"testing"
	"time"

	"github.com/expenzo/expenzo/internal/event_bus"
	"github.com/expenzo/expenzo/internal/utils"
	"github.com/expenzo/expenzo/pkg/expense"
	"github.com/expenzo/expenzo/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type fixture struct {
	expenseRepo    *expense.StubExpenseRepo
	settingsRepo   *settings.StubSettingsRepo
	expenseService expense.Service
	service        Service
}

func setup(t *testing.T) fixture {
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)}

	expenseRepo := expense.NewStubExpenseRepo()
	expenseService := expense.NewService(expenseRepo, bus, clock)
	settingsRepo := settings.NewStubSettingsRepo()
	settingsService := settings.NewService(settingsRepo, bus)

	return fixture{
		expenseRepo:    expenseRepo,
		settingsRepo:   settingsRepo,
		expenseService: expenseService,
		service:        NewService(expenseService, settingsService),
	}
}

func (f fixture) seed(t *testing.T, names ...string) []string {
	t.Helper()
	var ids []string
	for _, name := range names {
		created, err := f.expenseService.Create(ctx, name, 100, expense.TypeMine)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}

func TestServiceImpl_Reset(t *testing.T) {
	t.Run("should delete every expense and zero the salary", func(t *testing.T) {
		f := setup(t)

		// given
		f.seed(t, "Rent", "Coffee", "Groceries")
		require.NoError(t, f.settingsRepo.MergeSalary(ctx, 5000))

		// when
		err := f.service.Reset(ctx)

		// then
		require.NoError(t, err)
		remaining, _ := f.expenseRepo.GetAll(ctx)
		assert.Empty(t, remaining)
		current, _ := f.settingsRepo.Get(ctx)
		assert.Equal(t, 0.0, current.Salary)
	})

	t.Run("should continue past a failed deletion and still reset the salary", func(t *testing.T) {
		f := setup(t)

		// given: 3 expenses, the middle one refuses to delete
		ids := f.seed(t, "Rent", "Coffee", "Groceries")
		f.expenseRepo.FailingIds[ids[1]] = true
		require.NoError(t, f.settingsRepo.MergeSalary(ctx, 5000))

		// when
		err := f.service.Reset(ctx)

		// then: the other two are gone, the stubborn one survives, salary is 0
		require.NoError(t, err)
		remaining, _ := f.expenseRepo.GetAll(ctx)
		require.Len(t, remaining, 1)
		assert.Equal(t, ids[1], remaining[0].ID)
		current, _ := f.settingsRepo.Get(ctx)
		assert.Equal(t, 0.0, current.Salary)
	})

	t.Run("should succeed on an empty history", func(t *testing.T) {
		f := setup(t)

		// when
		err := f.service.Reset(ctx)

		// then
		assert.NoError(t, err)
	})
}
