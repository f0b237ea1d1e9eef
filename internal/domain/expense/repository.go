package expense

import (
	"context"
)

type ExpenseRepository interface {
	GetByID(ctx context.Context, id string) (Expense, error)
	Create(ctx context.Context, newExpense Expense) (Expense, error)
	UpdateStatus(ctx context.Context, req UpdateExpenseStatusRequest) error

	// Listings are ordered by submitted_at descending (newest first).
	ListByEmployee(ctx context.Context, employeeID string) ([]Expense, error)
	ListAll(ctx context.Context) ([]Expense, error)
	ListByStatus(ctx context.Context, status Status) ([]Expense, error)
}
