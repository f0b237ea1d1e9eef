package dashboard

import (
	"context"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
)

type DashboardService interface {
	ForEmployee(ctx context.Context, identity auth.Identity) (EmployeeDashboard, error)
	ForManager(ctx context.Context, identity auth.Identity) (ManagerDashboard, error)
}
