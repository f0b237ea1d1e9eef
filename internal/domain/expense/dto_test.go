package expense

import (
	"testing"

	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SubmitExpenseRequest {
	return SubmitExpenseRequest{
		Description: "Hotel for conference",
		Amount:      120.99,
		ExpenseDate: "2025-05-20",
		Category:    "accommodation",
	}
}

func TestSubmitExpenseRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("whole-unit amount passes", func(t *testing.T) {
		req := validRequest()
		req.Amount = 100
		assert.NoError(t, req.Validate())
	})

	t.Run("optional comments pass through", func(t *testing.T) {
		req := validRequest()
		comments := "shared room with colleague"
		req.Comments = &comments
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(r *SubmitExpenseRequest)
		wantKey string
	}{
		{"empty description", func(r *SubmitExpenseRequest) { r.Description = "" }, "description"},
		{"zero amount", func(r *SubmitExpenseRequest) { r.Amount = 0 }, "amount"},
		{"negative amount", func(r *SubmitExpenseRequest) { r.Amount = -10 }, "amount"},
		{"sub-cent amount", func(r *SubmitExpenseRequest) { r.Amount = 10.001 }, "amount"},
		{"missing date", func(r *SubmitExpenseRequest) { r.ExpenseDate = "" }, "expense_date"},
		{"malformed date", func(r *SubmitExpenseRequest) { r.ExpenseDate = "20-05-2025" }, "expense_date"},
		{"impossible date", func(r *SubmitExpenseRequest) { r.ExpenseDate = "2025-02-30" }, "expense_date"},
		{"missing category", func(r *SubmitExpenseRequest) { r.Category = "" }, "category"},
		{"unknown category", func(r *SubmitExpenseRequest) { r.Category = "entertainment" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Contains(t, validationErrs.ToMap(), tt.wantKey)
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}
