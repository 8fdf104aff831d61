package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/expenzo/expenzo/internal/event_bus"
	"github.com/expenzo/expenzo/internal/utils"
	log "github.com/sirupsen/logrus"
)

// EventExpensesChanged is published with the full post-write expense list
// (ordered by date descending) after every successful create or delete.
const EventExpensesChanged event_bus.EventType = "expenses.changed"

var ErrExpenseNotFound = errors.New("expense not found")

type Service interface {
	// Create validates and stores a new expense, stamping its date from the
	// clock's current local day.
	Create(ctx context.Context, name string, amount float64, expenseType ExpenseType) (Expense, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]Expense, error)
}

type ServiceImpl struct {
	repo  ExpenseRepo
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo ExpenseRepo, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

func (s *ServiceImpl) Create(ctx context.Context, name string, amount float64, expenseType ExpenseType) (Expense, error) {
	if name == "" {
		return Expense{}, fmt.Errorf("expense name must not be empty")
	}
	if amount < 0 {
		return Expense{}, fmt.Errorf("expense amount must not be negative")
	}
	if _, err := ParseExpenseType(string(expenseType)); err != nil {
		return Expense{}, err
	}

	expense := Expense{
		Name:   name,
		Amount: amount,
		Date:   s.clock.Now().Format(DateLayout),
		Type:   expenseType,
	}

	id, err := s.repo.Store(ctx, expense)
	if err != nil {
		return Expense{}, err
	}
	expense.ID = id

	s.publishChanged(ctx)
	return expense, nil
}

func (s *ServiceImpl) Remove(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%s)", id)
		return ErrExpenseNotFound
	}

	s.publishChanged(ctx)
	return nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]Expense, error) {
	return s.repo.GetAll(ctx)
}

// publishChanged pushes the current full snapshot to subscribers; a failing
// subscriber must not fail the write that triggered it.
func (s *ServiceImpl) publishChanged(ctx context.Context) {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Errorf("failed to load expenses for change notification: %v", err)
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, EventExpensesChanged, expenses)); err != nil {
		log.Errorf("failed to publish expenses change: %v", err)
	}
}
