// Package reset clears the whole expense history and zeroes the salary.
package reset

import (
	"context"

	"github.com/expenzo/expenzo/pkg/expense"
	"github.com/expenzo/expenzo/pkg/settings"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// Reset deletes every known expense one at a time and then sets the salary
	// to 0. The batch is best-effort: a failed deletion is logged and the
	// remaining deletions and the salary reset still run. Not atomic.
	Reset(ctx context.Context) error
}

type ServiceImpl struct {
	expenseService  expense.Service
	settingsService settings.Service
}

func NewService(expenseService expense.Service, settingsService settings.Service) *ServiceImpl {
	return &ServiceImpl{
		expenseService:  expenseService,
		settingsService: settingsService,
	}
}

func (s *ServiceImpl) Reset(ctx context.Context) error {
	expenses, err := s.expenseService.List(ctx)
	if err != nil {
		return err
	}

	failures := 0
	for _, e := range expenses {
		if err := s.expenseService.Remove(ctx, e.ID); err != nil {
			log.Errorf("failed to delete expense %s during reset, continuing: %v", e.ID, err)
			failures++
		}
	}
	if failures > 0 {
		log.Warnf("reset completed with %d of %d deletions failed", failures, len(expenses))
	}

	return s.settingsService.SetSalary(ctx, 0)
}
