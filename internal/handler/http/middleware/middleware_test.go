package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(ja *jwtauth.JWTAuth) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(AuthRequired(ja))

		r.Group(func(r chi.Router) {
			r.Use(AdminOnly)
			r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(EmployeeOnly)
			r.Get("/employee", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func accessToken(t *testing.T, ja *jwtauth.JWTAuth, role user.Role) string {
	t.Helper()
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return tokenString
}

func doRequest(router *chi.Mux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_MissingToken(t *testing.T) {
	t.Parallel()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := testRouter(ja)

	rec := doRequest(router, "/admin", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	t.Parallel()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, refreshToken, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"type":    "refresh",
	})
	require.NoError(t, err)
	router := testRouter(ja)

	rec := doRequest(router, "/admin", refreshToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	t.Parallel()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := testRouter(ja)

	rec := doRequest(router, "/admin", accessToken(t, ja, user.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "/admin", accessToken(t, ja, user.RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEmployeeOnly(t *testing.T) {
	t.Parallel()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := testRouter(ja)

	rec := doRequest(router, "/employee", accessToken(t, ja, user.RoleUser))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "/employee", accessToken(t, ja, user.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
