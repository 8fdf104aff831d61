package expense

import (
	"context"
	"testing"

	"github.com/expenzo/expenzo/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (context.Context, ExpenseRepo) {
	db := test_utils.SetupTestDB(t)
	return context.Background(), NewExpenseRepo(db)
}

func TestExpenseRepoImpl_Store(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)

	// when
	id, err := repo.Store(ctx, Expense{Name: "Coffee", Amount: 50, Date: "2025-03-14", Type: TypeFood})
	require.NoError(t, err)

	// then
	assert.NotEmpty(t, id)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, id, stored[0].ID)
	assert.Equal(t, "Coffee", stored[0].Name)
	assert.Equal(t, 50.0, stored[0].Amount)
	assert.Equal(t, "2025-03-14", stored[0].Date)
	assert.Equal(t, TypeFood, stored[0].Type)
}

func TestExpenseRepoImpl_GetAll_OrdersByDateDescending(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	_, err := repo.Store(ctx, Expense{Name: "Old", Amount: 10, Date: "2025-01-05", Type: TypeMine})
	require.NoError(t, err)
	_, err = repo.Store(ctx, Expense{Name: "New", Amount: 20, Date: "2025-03-20", Type: TypeMine})
	require.NoError(t, err)
	_, err = repo.Store(ctx, Expense{Name: "Middle", Amount: 15, Date: "2025-02-10", Type: TypeMine})
	require.NoError(t, err)

	// when
	stored, err := repo.GetAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "New", stored[0].Name)
	assert.Equal(t, "Middle", stored[1].Name)
	assert.Equal(t, "Old", stored[2].Name)
}

func TestExpenseRepoImpl_Delete(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	id, err := repo.Store(ctx, Expense{Name: "Coffee", Amount: 50, Date: "2025-03-14", Type: TypeFood})
	require.NoError(t, err)

	// when
	deleted, err := repo.Delete(ctx, id)

	// then
	require.NoError(t, err)
	assert.True(t, deleted)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestExpenseRepoImpl_Delete_MissingId(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)

	// when
	deleted, err := repo.Delete(ctx, "no-such-id")

	// then
	require.NoError(t, err)
	assert.False(t, deleted)
}
