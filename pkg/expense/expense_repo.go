package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ExpenseRepo interface {
	// Store persists a new Expense and returns the id assigned by the store.
	Store(ctx context.Context, expense Expense) (string, error)
	// GetAll returns every stored expense ordered by date descending.
	GetAll(ctx context.Context) ([]Expense, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ExpenseRepoImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r ExpenseRepoImpl) Store(ctx context.Context, expense Expense) (string, error) {
	query := `INSERT INTO expense (id, name, amount, date, type) VALUES (?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return "", err
	}
	defer stmt.Close()

	id := uuid.NewString()
	_, err = stmt.ExecContext(ctx,
		id,
		expense.Name,
		expense.Amount,
		expense.Date,
		string(expense.Type),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return "", err
	}

	return id, nil
}

func (r ExpenseRepoImpl) GetAll(ctx context.Context) ([]Expense, error) {
	query := `SELECT id, name, amount, date, type FROM expense ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var expense Expense
		var rawType string
		if err := rows.Scan(
			&expense.ID,
			&expense.Name,
			&expense.Amount,
			&expense.Date,
			&rawType,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expenseType, err := ParseExpenseType(rawType)
		if err != nil {
			err := fmt.Errorf("could not parse stored expense type: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.Type = expenseType
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (r ExpenseRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM expense WHERE id = ?`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
