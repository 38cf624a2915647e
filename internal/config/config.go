package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	AI        AIConfig
	Analytics AnalyticsConfig
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// AIConfig holds the optional text-completion provider settings.
// An empty APIKey selects the deterministic analytics paths.
type AIConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	RateLimitPerMin int
}

// AnalyticsConfig holds the tunables of the anomaly and attrition heuristics.
type AnalyticsConfig struct {
	WindowDays               int
	WorkdayStartHour         int
	LateGraceMinutes         int
	MinSamples               int
	ZScoreThreshold          float64
	MinBalanceRecords        int
	BalanceMultiplier        float64
	AttritionLeaveWindowDays int
	HighTurnoverRoles        []string
	Location                 *time.Location
	ScanInterval             time.Duration
}

// DefaultAnalyticsConfig returns the stock heuristic tunables.
func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		WindowDays:               30,
		WorkdayStartHour:         9,
		LateGraceMinutes:         15,
		MinSamples:               5,
		ZScoreThreshold:          2,
		MinBalanceRecords:        5,
		BalanceMultiplier:        2,
		AttritionLeaveWindowDays: 90,
		HighTurnoverRoles: []string{
			"Sales Development Representative",
			"Customer Support Agent",
			"Junior Developer",
		},
		Location:     time.UTC,
		ScanInterval: time.Hour,
	}
}

func Load() (*Config, error) {
	// .env is optional; container deployments inject the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvInt("DB_MAX_CONNS", 25)),
		MinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// AI completion provider
	aiTimeout, err := time.ParseDuration(getEnv("AI_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT: %w", err)
	}

	config.AI = AIConfig{
		APIKey:          getEnv("AI_API_KEY", ""),
		BaseURL:         getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		Model:           getEnv("AI_MODEL", "gpt-3.5-turbo-instruct"),
		Timeout:         aiTimeout,
		RateLimitPerMin: getEnvInt("AI_RATE_LIMIT_PER_MIN", 60),
	}

	analytics, err := loadAnalytics()
	if err != nil {
		return nil, err
	}
	config.Analytics = analytics

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadAnalytics() (AnalyticsConfig, error) {
	a := DefaultAnalyticsConfig()

	a.WindowDays = getEnvInt("ANALYTICS_WINDOW_DAYS", a.WindowDays)
	a.WorkdayStartHour = getEnvInt("ANALYTICS_WORKDAY_START_HOUR", a.WorkdayStartHour)
	a.LateGraceMinutes = getEnvInt("ANALYTICS_LATE_GRACE_MINUTES", a.LateGraceMinutes)
	a.MinSamples = getEnvInt("ANALYTICS_MIN_SAMPLES", a.MinSamples)
	a.ZScoreThreshold = getEnvFloat("ANALYTICS_ZSCORE_THRESHOLD", a.ZScoreThreshold)
	a.MinBalanceRecords = getEnvInt("ANALYTICS_MIN_BALANCE_RECORDS", a.MinBalanceRecords)
	a.BalanceMultiplier = getEnvFloat("ANALYTICS_BALANCE_MULTIPLIER", a.BalanceMultiplier)
	a.AttritionLeaveWindowDays = getEnvInt("ANALYTICS_ATTRITION_LEAVE_WINDOW_DAYS", a.AttritionLeaveWindowDays)
	a.HighTurnoverRoles = getEnvSlice("ANALYTICS_HIGH_TURNOVER_ROLES", a.HighTurnoverRoles)

	loc, err := time.LoadLocation(getEnv("ANALYTICS_TIMEZONE", "UTC"))
	if err != nil {
		return AnalyticsConfig{}, fmt.Errorf("invalid ANALYTICS_TIMEZONE: %w", err)
	}
	a.Location = loc

	interval, err := time.ParseDuration(getEnv("ANALYTICS_SCAN_INTERVAL", "1h"))
	if err != nil {
		return AnalyticsConfig{}, fmt.Errorf("invalid ANALYTICS_SCAN_INTERVAL: %w", err)
	}
	a.ScanInterval = interval

	return a, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	return c.Analytics.Validate()
}

// Validate rejects tunables that would make the heuristics meaningless.
func (a AnalyticsConfig) Validate() error {
	if a.WindowDays <= 0 {
		return fmt.Errorf("ANALYTICS_WINDOW_DAYS must be positive")
	}
	if a.WorkdayStartHour < 0 || a.WorkdayStartHour > 23 {
		return fmt.Errorf("ANALYTICS_WORKDAY_START_HOUR must be between 0 and 23")
	}
	if a.LateGraceMinutes < 0 {
		return fmt.Errorf("ANALYTICS_LATE_GRACE_MINUTES must not be negative")
	}
	if a.MinSamples <= 0 || a.MinBalanceRecords <= 0 {
		return fmt.Errorf("analytics sample floors must be positive")
	}
	if a.ZScoreThreshold <= 0 || a.BalanceMultiplier <= 0 {
		return fmt.Errorf("analytics thresholds must be positive")
	}
	if a.AttritionLeaveWindowDays <= 0 {
		return fmt.Errorf("ANALYTICS_ATTRITION_LEAVE_WINDOW_DAYS must be positive")
	}
	if a.ScanInterval < 0 {
		return fmt.Errorf("ANALYTICS_SCAN_INTERVAL must not be negative")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
