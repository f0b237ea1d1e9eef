package middleware

import (
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose token is missing, invalid, or not an
// access token. Refresh tokens never pass this gate.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromContext builds the authenticated principal from verified token
// claims. It assumes AuthRequired already ran on the route.
func IdentityFromContext(r *http.Request) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	return auth.Identity{
		EmployeeID: employeeID,
		Role:       employee.Role(role),
	}, nil
}
