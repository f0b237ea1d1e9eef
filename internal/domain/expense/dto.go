package expense

import (
	"mime/multipart"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

type SubmitExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"` // YYYY-MM-DD
	Category    string  `json:"category"`
	Comments    *string `json:"comments,omitempty"`

	// Optional receipt, populated from the multipart form, never from JSON.
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

// Validate collects every violated field; submission is a batch-validation
// contract, not fail-fast.
func (r *SubmitExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if len(r.Description) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 255 characters",
		})
	}

	if !validator.IsValidAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than 0 with at most two decimal places",
		})
	}

	if validator.IsEmpty(r.ExpenseDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "expense_date",
			Message: "expense_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ExpenseDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "expense_date",
			Message: "expense_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else {
		valid := make([]string, 0, len(Categories))
		for _, c := range Categories {
			valid = append(valid, string(c))
		}
		if !validator.IsInSlice(r.Category, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "category",
				Message: "category must be one of: travel, food, accommodation, transportation, office_supplies, training, other",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateExpenseStatusRequest is the single mutation the approval workflow
// performs: status, approver, and approval time set together.
type UpdateExpenseStatusRequest struct {
	ID         string
	Status     Status
	ApprovedBy string
	ApprovedAt time.Time
}
