package settings

import "context"

type StubSettingsRepo struct {
	settings Settings
}

func NewStubSettingsRepo() *StubSettingsRepo {
	return &StubSettingsRepo{}
}

func (s *StubSettingsRepo) Get(ctx context.Context) (Settings, error) {
	return s.settings, nil
}

func (s *StubSettingsRepo) MergeSalary(ctx context.Context, salary float64) error {
	s.settings.Salary = salary
	return nil
}

func (s *StubSettingsRepo) Cleanup() {
	s.settings = Settings{}
}
