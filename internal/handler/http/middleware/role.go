package middleware

import (
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager requires the manager role.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		if employee.Role(roleStr) != employee.RoleManager {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks the role's permission set. Roles hold permissions,
// endpoints require them; the approval permission belongs to managers only.
func RequirePermission(permission employee.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, employee.ErrInsufficientPermission)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, employee.ErrInsufficientPermission)
				return
			}

			if !employee.HasPermission(employee.Role(roleStr), permission) {
				response.HandleError(w, employee.ErrInsufficientPermission)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
