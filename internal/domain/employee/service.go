package employee

import "context"

// EmployeeService is the directory surface. It takes the caller's role rather
// than the full authenticated identity so this package stays import-free of
// the auth domain, which itself depends on Role.
type EmployeeService interface {
	ListManagers(ctx context.Context, callerRole Role) ([]ManagerResponse, error)
}
