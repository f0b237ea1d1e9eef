package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
	"github.com/expenseflow/expense-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// requireTestDB connects to TEST_DATABASE_URL once per run, skipping when it
// is not set. The migrations/ schema must already be applied.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}
	return testDB
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, role employee.Role) employee.Employee {
	t.Helper()
	repo := postgresql.NewEmployeeRepository(db)
	email := fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())

	created, err := repo.Create(ctx, employee.Employee{
		Name:         "Test Employee",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Department:   "Finance",
		Role:         role,
	})
	require.NoError(t, err)
	return created
}

func createTestExpense(t *testing.T, ctx context.Context, db *database.DB, employeeID string, status expense.Status, submittedAt time.Time) expense.Expense {
	t.Helper()
	repo := postgresql.NewExpenseRepository(db)

	created, err := repo.Create(ctx, expense.Expense{
		EmployeeID:  employeeID,
		Description: "Test claim",
		Amount:      45.50,
		ExpenseDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Category:    expense.CategoryTravel,
		Status:      status,
		SubmittedAt: submittedAt,
	})
	require.NoError(t, err)
	return created
}

func TestEmployeeRepository(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	created := createTestEmployee(t, ctx, db, employee.RoleEmployee)
	require.NotEmpty(t, created.ID)

	t.Run("GetByID", func(t *testing.T) {
		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
		assert.Equal(t, employee.RoleEmployee, found.Role)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, created.Email)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("GetByEmail unknown returns no rows", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("ExistsByEmail", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, created.Email)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ListByRole returns only that role", func(t *testing.T) {
		manager := createTestEmployee(t, ctx, db, employee.RoleManager)

		managers, err := repo.ListByRole(ctx, employee.RoleManager)
		require.NoError(t, err)

		var found bool
		for _, m := range managers {
			assert.Equal(t, employee.RoleManager, m.Role)
			if m.ID == manager.ID {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestExpenseRepository(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewExpenseRepository(db)

	owner := createTestEmployee(t, ctx, db, employee.RoleEmployee)
	manager := createTestEmployee(t, ctx, db, employee.RoleManager)

	t.Run("Create and GetByID round trip", func(t *testing.T) {
		created := createTestExpense(t, ctx, db, owner.ID, expense.StatusPending, time.Now())
		require.NotEmpty(t, created.ID)
		assert.Equal(t, expense.StatusPending, created.Status)
		assert.Nil(t, created.ApprovedBy)
		assert.Nil(t, created.ApprovedAt)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, found.EmployeeID)
		assert.Equal(t, 45.50, found.Amount)
		assert.Equal(t, expense.CategoryTravel, found.Category)
	})

	t.Run("UpdateStatus stamps approver and time together", func(t *testing.T) {
		created := createTestExpense(t, ctx, db, owner.ID, expense.StatusPending, time.Now())

		approvedAt := time.Now().UTC().Truncate(time.Millisecond)
		err := repo.UpdateStatus(ctx, expense.UpdateExpenseStatusRequest{
			ID:         created.ID,
			Status:     expense.StatusApproved,
			ApprovedBy: manager.ID,
			ApprovedAt: approvedAt,
		})
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, expense.StatusApproved, found.Status)
		require.NotNil(t, found.ApprovedBy)
		assert.Equal(t, manager.ID, *found.ApprovedBy)
		require.NotNil(t, found.ApprovedAt)
	})

	t.Run("UpdateStatus on unknown id fails", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, expense.UpdateExpenseStatusRequest{
			ID:         "00000000-0000-0000-0000-000000000000",
			Status:     expense.StatusApproved,
			ApprovedBy: manager.ID,
			ApprovedAt: time.Now(),
		})
		assert.Error(t, err)
	})

	t.Run("ListByEmployee is newest first and owner-scoped", func(t *testing.T) {
		scoped := createTestEmployee(t, ctx, db, employee.RoleEmployee)
		older := createTestExpense(t, ctx, db, scoped.ID, expense.StatusPending, time.Now().Add(-time.Hour))
		newer := createTestExpense(t, ctx, db, scoped.ID, expense.StatusPending, time.Now())

		listed, err := repo.ListByEmployee(ctx, scoped.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, newer.ID, listed[0].ID)
		assert.Equal(t, older.ID, listed[1].ID)
	})

	t.Run("ListByStatus filters", func(t *testing.T) {
		created := createTestExpense(t, ctx, db, owner.ID, expense.StatusPending, time.Now())

		pending, err := repo.ListByStatus(ctx, expense.StatusPending)
		require.NoError(t, err)

		var found bool
		for _, e := range pending {
			assert.Equal(t, expense.StatusPending, e.Status)
			if e.ID == created.ID {
				found = true
			}
		}
		assert.True(t, found)
	})
}
