package auth

import "context"

// AuthService defines authentication business logic
type AuthService interface {
	// Register creates a new administrator account
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// Login verifies credentials and issues access and refresh tokens
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
