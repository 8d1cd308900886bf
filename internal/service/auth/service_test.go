package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory user.UserRepository enforcing email
// uniqueness.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	newUser.ID = uuid.NewString()
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newAuthService(repo user.UserRepository) auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	return NewAuthService(jwtService, repo)
}

func registerReq(email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:            "Admin One",
		Email:           email,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestAuthService_Register_CreatesAdmin(t *testing.T) {
	t.Parallel()
	svc := newAuthService(newFakeUserRepo())

	created, err := svc.Register(context.Background(), registerReq("admin@example.com"))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(user.RoleAdmin), created.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerReq("admin@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("admin@example.com"))
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	t.Parallel()
	svc := newAuthService(newFakeUserRepo())

	req := registerReq("admin@example.com")
	req.ConfirmPassword = "different"

	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), registerReq("admin@example.com"))
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	assert.Equal(t, "admin@example.com", result.User.Email)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), registerReq("admin@example.com"))
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	tokens, err := svc.Refresh(context.Background(), login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	// The exchanged refresh token is revoked and cannot be replayed.
	_, err = svc.Refresh(context.Background(), login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), registerReq("admin@example.com"))
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.Tokens.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
