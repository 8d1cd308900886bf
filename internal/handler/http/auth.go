package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-hq/absensi-backend-go/internal/handler/http/response"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account registered", result)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cookie := a.jwtService.RefreshTokenCookie(result.Tokens.RefreshToken, result.Tokens.RefreshTokenExpiresAt)
	http.SetCookie(w, cookie)

	response.Success(w, result)
}

// RefreshToken implements AuthHandler. The refresh token is read from the
// cookie first, falling back to the request body for non-browser clients.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req auth.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokens, err := a.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cookie := a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresAt)
	http.SetCookie(w, cookie)

	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Clear the refresh token cookie
	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, clearedCookie)

	response.SuccessWithMessage(w, "Logged out", nil)
}
