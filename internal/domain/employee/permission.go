package employee

type Permission string

const (
	// Expense lifecycle
	PermissionExpenseSubmit  Permission = "expense.submit"
	PermissionExpenseViewOwn Permission = "expense.view_own"
	PermissionExpenseViewAll Permission = "expense.view_all"
	PermissionExpenseApprove Permission = "expense.approve"

	// Dashboards
	PermissionDashboardViewOwn Permission = "dashboard.view_own"
	PermissionDashboardViewAll Permission = "dashboard.view_all"

	// Employee directory
	PermissionEmployeeViewManagers Permission = "employee.view_managers"
)

// RolePermissions maps roles to their permissions. Authorization checks are
// table-driven against this map rather than comparing roles inline at each
// call site.
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionExpenseSubmit,
		PermissionExpenseViewOwn,
		PermissionDashboardViewOwn,
	},
	RoleManager: {
		PermissionExpenseSubmit,
		PermissionExpenseViewOwn,
		PermissionExpenseViewAll,
		PermissionExpenseApprove,
		PermissionDashboardViewOwn,
		PermissionDashboardViewAll,
		PermissionEmployeeViewManagers,
	},
	// Admin mirrors the employee set. The role exists in the data model but is
	// never granted approval capability anywhere in the system.
	RoleAdmin: {
		PermissionExpenseSubmit,
		PermissionExpenseViewOwn,
		PermissionDashboardViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
