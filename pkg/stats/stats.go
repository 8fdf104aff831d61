// Package stats is the derivation engine: pure, deterministic transformations
// from an expense snapshot plus a selected month to the filtered set, the
// per-category aggregation, and the headline totals.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/expenzo/expenzo/pkg/expense"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the display name for the month of t.
func MonthName(t time.Time) string {
	return monthNames[int(t.Month())-1]
}

// monthNumber maps a month name to its 1-based zero-padded index ("March" -> "03").
func monthNumber(name string) (string, bool) {
	for i, month := range monthNames {
		if month == name {
			return fmt.Sprintf("%02d", i+1), true
		}
	}
	return "", false
}

// FilterByMonth retains the expenses whose date falls in the named month.
// An empty or unrecognized month name is the identity filter, not an error.
func FilterByMonth(expenses []expense.Expense, month string) []expense.Expense {
	number, ok := monthNumber(month)
	if !ok {
		return expenses
	}

	filtered := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		parts := strings.Split(e.Date, "-")
		if len(parts) > 1 && parts[1] == number {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

type CategoryTotal struct {
	Name   string
	Amount float64
}

// Aggregate groups expenses by name and sums amounts per group, ordered by
// total descending. Ties keep first-seen order; largest spending first is a
// display contract.
func Aggregate(expenses []expense.Expense) []CategoryTotal {
	totals := map[string]float64{}
	var order []string
	for _, e := range expenses {
		if _, seen := totals[e.Name]; !seen {
			order = append(order, e.Name)
		}
		totals[e.Name] += e.Amount
	}

	aggregated := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		aggregated = append(aggregated, CategoryTotal{Name: name, Amount: totals[name]})
	}
	sort.SliceStable(aggregated, func(i, j int) bool {
		return aggregated[i].Amount > aggregated[j].Amount
	})
	return aggregated
}

// TotalExpense sums the amounts of the given expenses (0 for an empty set).
func TotalExpense(expenses []expense.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Remaining is salary minus total. A negative result is a valid,
// display-significant state.
func Remaining(salary, totalExpense float64) float64 {
	return salary - totalExpense
}

// PercentOfSalary returns the share of salary a category amount represents.
// With no salary every category is 0. The value is not clamped; a category can
// exceed 100.
func PercentOfSalary(amount, salary float64) float64 {
	if salary <= 0 {
		return 0
	}
	return amount / salary * 100
}

// Suggestions is the distinct set of names ever entered, across all months,
// case-sensitive, empty names excluded, in first-seen order.
func Suggestions(expenses []expense.Expense) []string {
	seen := map[string]bool{}
	var suggestions []string
	for _, e := range expenses {
		if e.Name == "" || seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		suggestions = append(suggestions, e.Name)
	}
	return suggestions
}

// FilterSuggestions narrows suggestions to those containing the draft,
// case-insensitively. An empty draft keeps the whole set.
func FilterSuggestions(suggestions []string, draft string) []string {
	if draft == "" {
		return suggestions
	}
	needle := strings.ToLower(draft)
	filtered := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if strings.Contains(strings.ToLower(s), needle) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
