package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"employee can submit", RoleEmployee, PermissionExpenseSubmit, true},
		{"employee can view own expenses", RoleEmployee, PermissionExpenseViewOwn, true},
		{"employee cannot approve", RoleEmployee, PermissionExpenseApprove, false},
		{"employee cannot view all expenses", RoleEmployee, PermissionExpenseViewAll, false},
		{"employee cannot view manager dashboard", RoleEmployee, PermissionDashboardViewAll, false},

		{"manager can submit", RoleManager, PermissionExpenseSubmit, true},
		{"manager can approve", RoleManager, PermissionExpenseApprove, true},
		{"manager can view all expenses", RoleManager, PermissionExpenseViewAll, true},
		{"manager can view manager dashboard", RoleManager, PermissionDashboardViewAll, true},
		{"manager can list managers", RoleManager, PermissionEmployeeViewManagers, true},

		// Admin exists in the data model but never holds approval capability
		{"admin cannot approve", RoleAdmin, PermissionExpenseApprove, false},
		{"admin cannot view all expenses", RoleAdmin, PermissionExpenseViewAll, false},
		{"admin can submit", RoleAdmin, PermissionExpenseSubmit, true},

		{"unknown role has nothing", Role("intern"), PermissionExpenseSubmit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestCanApprove(t *testing.T) {
	manager := Employee{Role: RoleManager}
	assert.True(t, manager.CanApprove())
	assert.True(t, manager.IsManager())

	regular := Employee{Role: RoleEmployee}
	assert.False(t, regular.CanApprove())

	admin := Employee{Role: RoleAdmin}
	assert.False(t, admin.CanApprove())
	assert.False(t, admin.IsManager())
}
