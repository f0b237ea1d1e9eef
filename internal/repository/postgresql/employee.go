package postgresql

import (
	"context"

	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, email, password_hash, department, role, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, name, email, password_hash, department, role, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.PasswordHash,
		newEmployee.Department,
		newEmployee.Role,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.PasswordHash,
		&created.Department,
		&created.Role,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, department, role, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.Email,
		&found.PasswordHash,
		&found.Department,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return found, nil
}

// GetByEmail implements employee.EmployeeRepository. The lookup is a
// case-sensitive exact match.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, department, role, created_at, updated_at
		FROM employees
		WHERE email = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.Name,
		&found.Email,
		&found.PasswordHash,
		&found.Department,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return found, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListByRole implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, department, role, created_at, updated_at
		FROM employees
		WHERE role = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Email,
			&e.PasswordHash,
			&e.Department,
			&e.Role,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
