package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Can submit claims and see their own dashboard
	RoleManager  Role = "manager"  // Can approve/reject any claim
	RoleAdmin    Role = "admin"    // Exists in the data model; carries no approval capability
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Department   string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if the employee holds the manager role. Admin is not a
// superset of manager here: approval capability belongs to managers only.
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager
}

// CanApprove checks if the employee can resolve expense claims
func (e *Employee) CanApprove() bool {
	return HasPermission(e.Role, PermissionExpenseApprove)
}
