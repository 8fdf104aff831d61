package stats

import (
	"context"

	"github.com/expenzo/expenzo/pkg/expense"
	"github.com/expenzo/expenzo/pkg/settings"
	log "github.com/sirupsen/logrus"
)

type CategoryBreakdown struct {
	Name    string
	Amount  float64
	Percent float64
}

// MonthlySummary is everything the UI renders for a selected month.
type MonthlySummary struct {
	Month        string
	Salary       float64
	TotalExpense float64
	Remaining    float64
	Categories   []CategoryBreakdown
	Expenses     []expense.Expense
}

type StatsService interface {
	MonthlySummary(ctx context.Context, month string) (MonthlySummary, error)
	Suggestions(ctx context.Context, draft string) ([]string, error)
}

type StatsServiceImpl struct {
	expenseService  expense.Service
	settingsService settings.Service
}

func NewStatsService(expenseService expense.Service, settingsService settings.Service) *StatsServiceImpl {
	return &StatsServiceImpl{
		expenseService:  expenseService,
		settingsService: settingsService,
	}
}

func (s *StatsServiceImpl) MonthlySummary(ctx context.Context, month string) (MonthlySummary, error) {
	expenses, err := s.expenseService.List(ctx)
	if err != nil {
		return MonthlySummary{}, err
	}
	currentSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return MonthlySummary{}, err
	}
	log.Tracef("Summarizing %d expenses for month %q", len(expenses), month)

	return Summarize(expenses, currentSettings.Salary, month), nil
}

func (s *StatsServiceImpl) Suggestions(ctx context.Context, draft string) ([]string, error) {
	expenses, err := s.expenseService.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSuggestions(Suggestions(expenses), draft), nil
}

// Summarize runs the full derivation over an in-memory snapshot.
func Summarize(expenses []expense.Expense, salary float64, month string) MonthlySummary {
	filtered := FilterByMonth(expenses, month)
	total := TotalExpense(filtered)

	aggregated := Aggregate(filtered)
	categories := make([]CategoryBreakdown, 0, len(aggregated))
	for _, c := range aggregated {
		categories = append(categories, CategoryBreakdown{
			Name:    c.Name,
			Amount:  c.Amount,
			Percent: PercentOfSalary(c.Amount, salary),
		})
	}

	return MonthlySummary{
		Month:        month,
		Salary:       salary,
		TotalExpense: total,
		Remaining:    Remaining(salary, total),
		Categories:   categories,
		Expenses:     filtered,
	}
}
