package expense

import (
	"context"
	"io"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
)

type ExpenseService interface {
	Submit(ctx context.Context, identity auth.Identity, req SubmitExpenseRequest) (Expense, error)
	Get(ctx context.Context, identity auth.Identity, id string) (Expense, error)
	Approve(ctx context.Context, identity auth.Identity, id string) (Expense, error)
	Reject(ctx context.Context, identity auth.Identity, id string) (Expense, error)
	DownloadReceipt(ctx context.Context, identity auth.Identity, id string) (io.ReadCloser, string, error)
}
