package response

import (
	"errors"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Batch validation errors carry every violated field
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token cookie not found")
	case errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token cookie is empty")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, employee.ErrInsufficientPermission):
		Forbidden(w, "Insufficient permissions")

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrReceiptNotFound):
		NotFound(w, "Expense has no receipt")
	case errors.Is(err, expense.ErrExpenseAlreadyProcessed):
		Conflict(w, "Expense already processed")
	case errors.Is(err, expense.ErrReceiptUploadFailed):
		UploadFailure(w, "Failed to store receipt file")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
