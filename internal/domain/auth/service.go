package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, registerReq RegisterRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
