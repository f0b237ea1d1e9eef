package http

import (
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/middleware"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListManagers(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListManagers implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListManagers(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	managers, err := h.employeeService.ListManagers(r.Context(), identity.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, managers)
}
