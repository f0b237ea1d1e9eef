package dashboard

import (
	"context"
	"fmt"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/domain/dashboard"
	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
)

type DashboardServiceImpl struct {
	expense.ExpenseRepository
}

func NewDashboardService(expenseRepository expense.ExpenseRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		ExpenseRepository: expenseRepository,
	}
}

// ForEmployee implements dashboard.DashboardService. Counts are derived from
// the single fetched claim set, not from separate aggregate queries, so the
// numbers always agree with the listed claims within one call.
func (s *DashboardServiceImpl) ForEmployee(ctx context.Context, identity auth.Identity) (dashboard.EmployeeDashboard, error) {
	expenses, err := s.ExpenseRepository.ListByEmployee(ctx, identity.EmployeeID)
	if err != nil {
		return dashboard.EmployeeDashboard{}, fmt.Errorf("failed to list expenses for employee: %w", err)
	}

	result := dashboard.EmployeeDashboard{Expenses: expenses}
	for _, e := range expenses {
		switch e.Status {
		case expense.StatusApproved:
			result.ApprovedCount++
		case expense.StatusRejected:
			result.RejectedCount++
		case expense.StatusPending:
			result.PendingCount++
		}
	}

	return result, nil
}

// ForManager implements dashboard.DashboardService. Organization-wide, no
// ownership filter; gated on the dashboard.view_all permission.
func (s *DashboardServiceImpl) ForManager(ctx context.Context, identity auth.Identity) (dashboard.ManagerDashboard, error) {
	if !employee.HasPermission(identity.Role, employee.PermissionDashboardViewAll) {
		return dashboard.ManagerDashboard{}, employee.ErrManagerAccessRequired
	}

	pending, err := s.ExpenseRepository.ListByStatus(ctx, expense.StatusPending)
	if err != nil {
		return dashboard.ManagerDashboard{}, fmt.Errorf("failed to list pending expenses: %w", err)
	}

	all, err := s.ExpenseRepository.ListAll(ctx)
	if err != nil {
		return dashboard.ManagerDashboard{}, fmt.Errorf("failed to list all expenses: %w", err)
	}

	result := dashboard.ManagerDashboard{
		PendingExpenses: pending,
		AllExpenses:     all,
	}
	for _, e := range all {
		switch e.Status {
		case expense.StatusApproved:
			result.ApprovedCount++
		case expense.StatusRejected:
			result.RejectedCount++
		}
	}

	return result, nil
}
