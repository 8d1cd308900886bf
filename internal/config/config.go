package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	WorldTime  WorldTimeConfig
	HolidayAPI HolidayAPIConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the business-timezone settings used for the
// attendance day boundary and lateness cutoff.
type AttendanceConfig struct {
	TimezoneName   string
	TimezoneOffset int // hours east of UTC
}

// WorldTimeConfig holds the external time feed settings.
type WorldTimeConfig struct {
	URL     string
	Timeout time.Duration
}

// HolidayAPIConfig holds the external holiday feed settings.
type HolidayAPIConfig struct {
	BaseURL        string
	Key            string
	DefaultCountry string
	Timeout        time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "absensi"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance configuration: WITA (UTC+8) is the deployment default
	tzOffset, err := strconv.Atoi(getEnv("ATTENDANCE_TZ_OFFSET", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_TZ_OFFSET: %w", err)
	}

	config.Attendance = AttendanceConfig{
		TimezoneName:   getEnv("ATTENDANCE_TZ_NAME", "WITA"),
		TimezoneOffset: tzOffset,
	}

	// External time feed
	worldTimeTimeout, err := time.ParseDuration(getEnv("WORLDTIME_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORLDTIME_TIMEOUT: %w", err)
	}

	config.WorldTime = WorldTimeConfig{
		URL:     getEnv("WORLDTIME_API_URL", "https://worldtimeapi.org/api/timezone/Asia/Makassar"),
		Timeout: worldTimeTimeout,
	}

	// External holiday feed
	holidayTimeout, err := time.ParseDuration(getEnv("HOLIDAY_API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_API_TIMEOUT: %w", err)
	}

	config.HolidayAPI = HolidayAPIConfig{
		BaseURL:        getEnv("HOLIDAY_API_BASE_URL", "https://holidayapi.com/v1"),
		Key:            getEnv("HOLIDAY_API_KEY", ""),
		DefaultCountry: getEnv("HOLIDAY_API_COUNTRY", "ID"),
		Timeout:        holidayTimeout,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.TimezoneOffset < -12 || c.Attendance.TimezoneOffset > 14 {
		return fmt.Errorf("ATTENDANCE_TZ_OFFSET must be a valid UTC offset")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// BusinessLocation returns the fixed business timezone used for attendance
// day boundaries and the lateness cutoff.
func (c *Config) BusinessLocation() *time.Location {
	return time.FixedZone(c.Attendance.TimezoneName, c.Attendance.TimezoneOffset*3600)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
