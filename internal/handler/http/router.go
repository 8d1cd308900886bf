package http

import (
	"log/slog"
	"os"

	"github.com/absensi-hq/absensi-backend-go/internal/handler/http/middleware"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
					r.Get("/today", attendanceHandler.Today)
					r.Get("/my", attendanceHandler.GetMyAttendance)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Get("/summary/today", attendanceHandler.TodaySummary)
				})

				r.Get("/{id}", attendanceHandler.Get)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)
				r.Get("/upcoming", holidayHandler.Upcoming)
				r.Get("/{id}", holidayHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Post("/import", holidayHandler.Import)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})
		})
	})
	return r
}
