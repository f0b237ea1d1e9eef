package postgresql

import (
	"context"
	"fmt"

	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `
	id, employee_id, description, amount, expense_date, category, status,
	receipt_file_name, receipt_file_path, comments,
	submitted_at, approved_by, approved_at, created_at, updated_at`

func scanExpense(row interface{ Scan(dest ...any) error }) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.Description,
		&e.Amount,
		&e.ExpenseDate,
		&e.Category,
		&e.Status,
		&e.ReceiptFileName,
		&e.ReceiptFilePath,
		&e.Comments,
		&e.SubmittedAt,
		&e.ApprovedBy,
		&e.ApprovedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, newExpense expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (
			id, employee_id, description, amount, expense_date, category, status,
			receipt_file_name, receipt_file_path, comments,
			submitted_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, NOW(), NOW()
		)
		RETURNING` + expenseColumns

	created, err := scanExpense(q.QueryRow(ctx, query,
		newExpense.EmployeeID,
		newExpense.Description,
		newExpense.Amount,
		newExpense.ExpenseDate,
		newExpense.Category,
		newExpense.Status,
		newExpense.ReceiptFileName,
		newExpense.ReceiptFilePath,
		newExpense.Comments,
		newExpense.SubmittedAt,
	))
	if err != nil {
		return expense.Expense{}, err
	}

	return created, nil
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + expenseColumns + `
		FROM expenses
		WHERE id = $1`

	found, err := scanExpense(q.QueryRow(ctx, query, id))
	if err != nil {
		return expense.Expense{}, err
	}

	return found, nil
}

// UpdateStatus implements expense.ExpenseRepository. Status, approver, and
// approval time are written in a single UPDATE.
func (r *expenseRepositoryImpl) UpdateStatus(ctx context.Context, req expense.UpdateExpenseStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET status = $1, approved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.Status, req.ApprovedBy, req.ApprovedAt, req.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("expense with id %s not found", req.ID)
	}
	return nil
}

func (r *expenseRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

// ListByEmployee implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]expense.Expense, error) {
	query := `SELECT` + expenseColumns + `
		FROM expenses
		WHERE employee_id = $1
		ORDER BY submitted_at DESC`
	return r.list(ctx, query, employeeID)
}

// ListAll implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListAll(ctx context.Context) ([]expense.Expense, error) {
	query := `SELECT` + expenseColumns + `
		FROM expenses
		ORDER BY submitted_at DESC`
	return r.list(ctx, query)
}

// ListByStatus implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListByStatus(ctx context.Context, status expense.Status) ([]expense.Expense, error) {
	query := `SELECT` + expenseColumns + `
		FROM expenses
		WHERE status = $1
		ORDER BY submitted_at DESC`
	return r.list(ctx, query, status)
}
