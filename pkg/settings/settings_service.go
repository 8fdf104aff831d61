package settings

import (
	"context"
	"fmt"

	"github.com/expenzo/expenzo/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// EventSettingsChanged is published with the full post-write Settings record
// after every successful salary update.
const EventSettingsChanged event_bus.EventType = "settings.changed"

type Service interface {
	Get(ctx context.Context) (Settings, error)
	SetSalary(ctx context.Context, salary float64) error
}

type ServiceImpl struct {
	repo SettingsRepo
	bus  *event_bus.EventBus
}

func NewService(repo SettingsRepo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) SetSalary(ctx context.Context, salary float64) error {
	if salary < 0 {
		return fmt.Errorf("salary must not be negative")
	}
	if err := s.repo.MergeSalary(ctx, salary); err != nil {
		return err
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		log.Errorf("failed to load settings for change notification: %v", err)
		return nil
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, EventSettingsChanged, settings)); err != nil {
		log.Errorf("failed to publish settings change: %v", err)
	}
	return nil
}
