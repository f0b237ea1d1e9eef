package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password; the
	// two cases must stay observably identical.
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmailAlreadyExists         = errors.New("email already registered")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked        = errors.New("refresh token revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
)
