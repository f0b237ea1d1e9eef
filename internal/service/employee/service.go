package employee

import (
	"context"
	"fmt"

	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// ListManagers implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListManagers(ctx context.Context, callerRole employee.Role) ([]employee.ManagerResponse, error) {
	if !employee.HasPermission(callerRole, employee.PermissionEmployeeViewManagers) {
		return nil, employee.ErrManagerAccessRequired
	}

	managers, err := s.EmployeeRepository.ListByRole(ctx, employee.RoleManager)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}

	result := make([]employee.ManagerResponse, 0, len(managers))
	for _, m := range managers {
		result = append(result, employee.ManagerResponse{
			ID:         m.ID,
			Name:       m.Name,
			Email:      m.Email,
			Department: m.Department,
		})
	}

	return result, nil
}
