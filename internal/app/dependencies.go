package app

import (
	"database/sql"

	"github.com/expenzo/expenzo/internal/event_bus"
	"github.com/expenzo/expenzo/internal/utils"
	"github.com/expenzo/expenzo/pkg/expense"
	"github.com/expenzo/expenzo/pkg/live"
	"github.com/expenzo/expenzo/pkg/reset"
	"github.com/expenzo/expenzo/pkg/settings"
	"github.com/expenzo/expenzo/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	SettingsRepo    settings.SettingsRepo
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	StatsService stats.StatsService
	StatsHandler *stats.StatsHandler

	ResetService reset.Service
	ResetHandler *reset.Handler

	LiveHandler *live.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewService(deps.ExpenseRepo, deps.Bus, deps.Clock)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.SettingsRepo = settings.NewSettingsRepo(db)
	deps.SettingsService = settings.NewService(deps.SettingsRepo, deps.Bus)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.StatsService = stats.NewStatsService(deps.ExpenseService, deps.SettingsService)
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService)

	deps.ResetService = reset.NewService(deps.ExpenseService, deps.SettingsService)
	deps.ResetHandler = reset.NewHandler(deps.ResetService)

	deps.LiveHandler = live.NewHandler(deps.ExpenseService, deps.SettingsService, deps.ResetService, deps.Bus, deps.Clock)

	return deps
}
