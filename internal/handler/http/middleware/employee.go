package middleware

import (
	"net/http"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/absensi-hq/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// EmployeeOnly rejects administrator tokens. Check-in and check-out belong to
// employee accounts; admins manage but never attend.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) == user.RoleAdmin {
			response.HandleError(w, user.ErrEmployeeRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
