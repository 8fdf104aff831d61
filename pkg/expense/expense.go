package expense

import "fmt"

// DateLayout is the calendar-date format used for Expense.Date.
const DateLayout = "2006-01-02"

// ExpenseType is the closed set of expense categories.
type ExpenseType string

const (
	TypeMine   ExpenseType = "Mine"
	TypeFood   ExpenseType = "Food"
	TypeFamily ExpenseType = "Family"
)

// ParseExpenseType converts a raw string into an ExpenseType, rejecting
// anything outside the known set so arbitrary values never reach domain logic.
func ParseExpenseType(s string) (ExpenseType, error) {
	switch ExpenseType(s) {
	case TypeMine, TypeFood, TypeFamily:
		return ExpenseType(s), nil
	}
	return "", fmt.Errorf("unknown expense type: %q", s)
}

type Expense struct {
	ID     string
	Name   string
	Amount float64
	// Date is a calendar date in YYYY-MM-DD form, stamped at creation time.
	Date string
	Type ExpenseType
}
