package dashboard

import "github.com/expenseflow/expense-backend-go/internal/domain/expense"

// EmployeeDashboard summarizes the caller's own claims. Counts are derived
// from the fetched claim set, so they are consistent within a single call only.
type EmployeeDashboard struct {
	Expenses      []expense.Expense `json:"expenses"` // newest submission first
	ApprovedCount int               `json:"approved_count"`
	RejectedCount int               `json:"rejected_count"`
	PendingCount  int               `json:"pending_count"`
}

// ManagerDashboard is the organization-wide view with no ownership filter.
type ManagerDashboard struct {
	PendingExpenses []expense.Expense `json:"pending_expenses"`
	AllExpenses     []expense.Expense `json:"all_expenses"` // newest submission first
	ApprovedCount   int               `json:"approved_count"`
	RejectedCount   int               `json:"rejected_count"`
}
