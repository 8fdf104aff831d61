package stats

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

func setupService(t *testing.T) (context.Context, expense.Service, settings.Service, StatsService) {
	t.Helper()
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)}
	expenseService := expense.NewService(expense.NewStubExpenseRepo(), bus, clock)
	settingsService := settings.NewService(settings.NewStubSettingsRepo(), bus)
	return context.Background(), expenseService, settingsService, NewStatsService(expenseService, settingsService)
}

func TestStatsServiceImpl_MonthlySummary(t *testing.T) {
	ctx, expenseService, settingsService, service := setupService(t)

	// given
	_, err := expenseService.Create(ctx, "Rent", 1000, expense.TypeMine)
	require.NoError(t, err)
	_, err = expenseService.Create(ctx, "Coffee", 250, expense.TypeFood)
	require.NoError(t, err)
	require.NoError(t, settingsService.SetSalary(ctx, 5000))

	// when
	summary, err := service.MonthlySummary(ctx, "March")

	// then
	require.NoError(t, err)
	assert.Equal(t, 5000.0, summary.Salary)
	assert.Equal(t, 1250.0, summary.TotalExpense)
	assert.Equal(t, 3750.0, summary.Remaining)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Rent", summary.Categories[0].Name)
	assert.Equal(t, 20.0, summary.Categories[0].Percent)
}

func TestStatsServiceImpl_Suggestions(t *testing.T) {
	ctx, expenseService, _, service := setupService(t)

	// given
	_, err := expenseService.Create(ctx, "Rent", 1000, expense.TypeMine)
	require.NoError(t, err)
	_, err = expenseService.Create(ctx, "rent", 500, expense.TypeMine)
	require.NoError(t, err)
	_, err = expenseService.Create(ctx, "Food", 200, expense.TypeFood)
	require.NoError(t, err)

	// when
	suggestions, err := service.Suggestions(ctx, "re")

	// then
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent", "rent"}, suggestions)
}
