package main

import (
	"fmt"
	"net/http"

	"github.com/absensi-hq/absensi-backend-go/internal/config"
	appHTTP "github.com/absensi-hq/absensi-backend-go/internal/handler/http"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/clock"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/holidayapi"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/jwt"
	"github.com/absensi-hq/absensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/absensi-hq/absensi-backend-go/internal/service/attendance"
	authService "github.com/absensi-hq/absensi-backend-go/internal/service/auth"
	employeeService "github.com/absensi-hq/absensi-backend-go/internal/service/employee"
	holidayService "github.com/absensi-hq/absensi-backend-go/internal/service/holiday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	businessLoc := cfg.BusinessLocation()
	worldClock := clock.NewWorldTimeClock(cfg.WorldTime.URL, cfg.WorldTime.Timeout, businessLoc)
	holidayFeed := holidayapi.NewClient(cfg.HolidayAPI.BaseURL, cfg.HolidayAPI.Key, cfg.HolidayAPI.Timeout)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(jwtService, userRepo)
	employeeSvc := employeeService.NewEmployeeService(db, worldClock, businessLoc, employeeRepo, userRepo)
	holidaySvc := holidayService.NewHolidayService(worldClock, businessLoc, holidayFeed, cfg.HolidayAPI.DefaultCountry, holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(worldClock, businessLoc, holidaySvc, attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(jwtService, authHandler, employeeHandler, attendanceHandler, holidayHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
