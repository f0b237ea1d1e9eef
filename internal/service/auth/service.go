package auth

import (
	"context"
	"fmt"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
	"github.com/expenseflow/expense-backend-go/internal/pkg/jwt"
	"github.com/expenseflow/expense-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwt.Service
	postgresql.RefreshTokenRepository
}

func NewAuthService(db *database.DB, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, refreshTokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		EmployeeRepository:     employeeRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

// Register implements auth.AuthService. The raw password is hashed before it
// reaches the repository and is never logged.
func (a *AuthServiceImpl) Register(ctx context.Context, registerReq auth.RegisterRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	exists, err := a.EmployeeRepository.ExistsByEmail(ctx, registerReq.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registerReq.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.Employee{
		Name:         registerReq.Name,
		Email:        registerReq.Email,
		PasswordHash: string(hash),
		Department:   registerReq.Department,
		Role:         employee.RoleEmployee,
	}
	newEmployee, err = a.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	if err := a.issueTokens(ctx, newEmployee, &tokenResponse, sessionTrackReq); err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Login implements auth.AuthService. Unknown email and wrong password return
// the same ErrInvalidCredentials so the two cases are indistinguishable.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	employeeData, err := a.EmployeeRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employeeData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := a.issueTokens(ctx, employeeData, &tokenResponse, sessionTrackReq); err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry
	employeeID, isRevoked, err := a.RefreshTokenRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Re-read the employee so the new token carries the current role
	employeeData, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return auth.AccessTokenResponse{}, employee.ErrEmployeeNotFound
	}

	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(employeeData.ID, employeeData.Email, employeeData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		_, isRevoked, err := a.RefreshTokenRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.RefreshTokenRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})

	return err
}

// issueTokens generates an access/refresh pair and persists the refresh token.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, emp employee.Employee, tokenResponse *auth.TokenResponse, sessionTrackReq auth.SessionTrackingRequest) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(emp.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.RefreshTokenRepository.CreateRefreshToken(txCtx, emp.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
}
