package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type SettingsRepo interface {
	Get(ctx context.Context) (Settings, error)
	// MergeSalary upserts only the salary column; any other settings columns
	// keep their current values.
	MergeSalary(ctx context.Context, salary float64) error
}

type SettingsRepoImpl struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepoImpl {
	return &SettingsRepoImpl{db: db}
}

func (r SettingsRepoImpl) Get(ctx context.Context) (Settings, error) {
	query := `SELECT salary FROM settings WHERE id = 1`

	var settings Settings
	err := r.db.QueryRowContext(ctx, query).Scan(&settings.Salary)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, nil
	}
	if err != nil {
		err := fmt.Errorf("could not query settings: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	return settings, nil
}

func (r SettingsRepoImpl) MergeSalary(ctx context.Context, salary float64) error {
	query := `INSERT INTO settings (id, salary) VALUES (1, ?)
	          ON CONFLICT (id) DO UPDATE SET salary = excluded.salary`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, salary); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}
