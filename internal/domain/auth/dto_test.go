package auth

import (
	"testing"

	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Password:   "password123",
		Department: "Finance",
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name     string
		mutate   func(r *RegisterRequest)
		wantKeys []string
	}{
		{
			name:     "missing name",
			mutate:   func(r *RegisterRequest) { r.Name = "" },
			wantKeys: []string{"name"},
		},
		{
			name:     "missing email",
			mutate:   func(r *RegisterRequest) { r.Email = "" },
			wantKeys: []string{"email"},
		},
		{
			name:     "malformed email",
			mutate:   func(r *RegisterRequest) { r.Email = "not-an-email" },
			wantKeys: []string{"email"},
		},
		{
			name:     "short password",
			mutate:   func(r *RegisterRequest) { r.Password = "short" },
			wantKeys: []string{"password"},
		},
		{
			name:     "missing department",
			mutate:   func(r *RegisterRequest) { r.Department = "" },
			wantKeys: []string{"department"},
		},
		{
			name: "multiple violations reported together",
			mutate: func(r *RegisterRequest) {
				r.Name = ""
				r.Email = "bad"
				r.Password = ""
			},
			wantKeys: []string{"name", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			details := validationErrs.ToMap()
			for _, key := range tt.wantKeys {
				assert.Contains(t, details, key)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := LoginRequest{Email: "jane@example.com", Password: "password123"}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty fields are both reported", func(t *testing.T) {
		req := LoginRequest{}
		err := req.Validate()
		require.Error(t, err)

		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		details := validationErrs.ToMap()
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "password")
	})
}

func TestRefreshTokenRequestValidate(t *testing.T) {
	req := RefreshTokenRequest{}
	assert.Error(t, req.Validate())

	req.RefreshToken = "some-token"
	assert.NoError(t, req.Validate())
}
