package expense

import (
	"context"
	"fmt"
	"sort"
)

type StubExpenseRepo struct {
	nextId   int
	expenses []Expense
	// FailingIds makes Delete fail for the listed ids.
	FailingIds map[string]bool
	// FailStore makes every Store call fail.
	FailStore bool
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{FailingIds: map[string]bool{}}
}

func (s *StubExpenseRepo) Store(ctx context.Context, expense Expense) (string, error) {
	if s.FailStore {
		return "", fmt.Errorf("simulated write failure")
	}
	s.nextId++
	expense.ID = fmt.Sprintf("expense-%d", s.nextId)
	s.expenses = append(s.expenses, expense)
	return expense.ID, nil
}

func (s *StubExpenseRepo) GetAll(ctx context.Context) ([]Expense, error) {
	expenses := make([]Expense, len(s.expenses))
	copy(expenses, s.expenses)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})
	return expenses, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	if s.FailingIds[id] {
		return false, fmt.Errorf("simulated write failure for %s", id)
	}
	for i, expense := range s.expenses {
		if expense.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.expenses = nil
	s.FailingIds = map[string]bool{}
	s.FailStore = false
}
