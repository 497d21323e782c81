package auth

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	GoogleAuthURL(state string) string
	GoogleCallback(ctx context.Context, req GoogleCallbackRequest) (*TokenResponse, error)
}
