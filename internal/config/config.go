package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Cron       CronConfig
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name              string
	Version           string
	Port              int
	Env               string
	LogLevel          string
	Timezone          string
	Location          *time.Location
	ExposeErrorDetail bool
	AllowedOrigins    []string
}

type AttendanceConfig struct {
	LateDetection bool
}

type CronConfig struct {
	TokenPruneInterval time.Duration
}

// fileConfig mirrors the optional YAML overlay. Values may reference
// environment variables as ${NAME}.
type fileConfig struct {
	Database struct {
		URL      string `yaml:"url"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	JWT struct {
		Secret            string `yaml:"secret"`
		AccessExpiration  string `yaml:"access_expiration"`
		RefreshExpiration string `yaml:"refresh_expiration"`
	} `yaml:"jwt"`
	App struct {
		Port              string `yaml:"port"`
		Env               string `yaml:"env"`
		LogLevel          string `yaml:"log_level"`
		Timezone          string `yaml:"timezone"`
		ExposeErrorDetail string `yaml:"expose_error_detail"`
		AllowedOrigins    string `yaml:"allowed_origins"`
	} `yaml:"app"`
	Attendance struct {
		LateDetection string `yaml:"late_detection"`
	} `yaml:"attendance"`
	Cron struct {
		TokenPruneInterval string `yaml:"token_prune_interval"`
	} `yaml:"cron"`
}

func (f fileConfig) defaults() map[string]string {
	return map[string]string{
		"DATABASE_URL":                f.Database.URL,
		"DB_HOST":                     f.Database.Host,
		"DB_PORT":                     f.Database.Port,
		"DB_USER":                     f.Database.User,
		"DB_PASSWORD":                 f.Database.Password,
		"DB_NAME":                     f.Database.Name,
		"DB_SSL_MODE":                 f.Database.SSLMode,
		"JWT_SECRET_KEY":              f.JWT.Secret,
		"JWT_ACCESS_EXPIRATION_TIME":  f.JWT.AccessExpiration,
		"JWT_REFRESH_EXPIRATION_TIME": f.JWT.RefreshExpiration,
		"APP_PORT":                    f.App.Port,
		"APP_ENV":                     f.App.Env,
		"LOG_LEVEL":                   f.App.LogLevel,
		"APP_TIMEZONE":                f.App.Timezone,
		"APP_EXPOSE_ERROR_DETAIL":     f.App.ExposeErrorDetail,
		"CORS_ALLOWED_ORIGINS":        f.App.AllowedOrigins,
		"ATTENDANCE_LATE_DETECTION":   f.Attendance.LateDetection,
		"CRON_TOKEN_PRUNE_INTERVAL":   f.Cron.TokenPruneInterval,
	}
}

// Load reads configuration from the environment. A .env file and a YAML file
// named by CONFIG_FILE are both optional; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	overlay, err := loadFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}
	get := func(key, fallback string) string {
		if v := overlay[key]; v != "" {
			fallback = v
		}
		return getEnv(key, fallback)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(get("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		URL:      get("DATABASE_URL", ""),
		Host:     get("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     get("DB_USER", "postgres"),
		Password: get("DB_PASSWORD", ""),
		Name:     get("DB_NAME", "timerod"),
		SSLMode:  get("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(get("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	env := get("APP_ENV", "development")
	exposeDetail, err := strconv.ParseBool(get("APP_EXPOSE_ERROR_DETAIL", strconv.FormatBool(env != "production")))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_EXPOSE_ERROR_DETAIL: %w", err)
	}

	tz := get("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	config.App = AppConfig{
		Name:              "timerod",
		Version:           "v1.0.0",
		Port:              appPort,
		Env:               env,
		LogLevel:          get("LOG_LEVEL", "info"),
		Timezone:          tz,
		Location:          loc,
		ExposeErrorDetail: exposeDetail,
		AllowedOrigins:    splitList(get("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            get("JWT_SECRET_KEY", ""),
		AccessExpiration:  get("JWT_ACCESS_EXPIRATION_TIME", "8h"),
		RefreshExpiration: get("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	lateDetection, err := strconv.ParseBool(get("ATTENDANCE_LATE_DETECTION", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_DETECTION: %w", err)
	}
	config.Attendance = AttendanceConfig{LateDetection: lateDetection}

	pruneInterval, err := time.ParseDuration(get("CRON_TOKEN_PRUNE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_TOKEN_PRUNE_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{TokenPruneInterval: pruneInterval}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" && c.Database.Password == "" {
		return errors.New("DB_PASSWORD or DATABASE_URL is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}
	if c.Cron.TokenPruneInterval <= 0 {
		return errors.New("CRON_TOKEN_PRUNE_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func loadFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Replace environment variables in the YAML content
	content := string(data)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
	}

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(content), &fc); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return fc.defaults(), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
