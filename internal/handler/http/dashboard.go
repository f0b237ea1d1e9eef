package http

import (
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/dashboard"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/middleware"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Employee(w http.ResponseWriter, r *http.Request)
	Manager(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Employee implements DashboardHandler.
func (h *DashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.ForEmployee(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Manager implements DashboardHandler.
func (h *DashboardHandlerImpl) Manager(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.ForManager(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
