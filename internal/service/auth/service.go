package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwtService jwt.Service
	user.UserRepository
}

func NewAuthService(jwtService jwt.Service, userRepo user.UserRepository) auth.AuthService {
	return &AuthServiceImpl{
		jwtService:     jwtService,
		UserRepository: userRepo,
	}
}

// Register implements auth.AuthService. Self-registration always produces an
// administrator account; employee accounts are provisioned by admins.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	// The unique index on users.email remains the authoritative guard; this
	// check only rejects known-taken addresses before the bcrypt work.
	taken, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to check email availability: %w", err)
	}
	if taken {
		return auth.UserResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return auth.UserResponse{}, user.ErrUserEmailExists
		}
		return auth.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return auth.UserResponse{
		ID:    created.ID,
		Name:  created.Name,
		Email: created.Email,
		Role:  string(created.Role),
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	account, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	tokens, err := a.issueTokens(account)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: auth.UserResponse{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
			Role:  string(account.Role),
		},
		Tokens: tokens,
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Rotation: the exchanged token is revoked so it cannot be replayed.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(account)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(account user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}
