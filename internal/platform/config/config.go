package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthBackendStatic   = "static"
	AuthBackendPostgres = "postgres"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	AuthBackend   string
	LoginUsername string
	LoginPassword string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SessionBackend string
	SessionTTL     time.Duration
	RedisHost      string
	RedisPort      string
	RedisPassword  string

	RequireLogin   bool
	MaxUploadBytes int64
	CookieSecure   bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads a .env file when present and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables with defaults applied.
func FromEnv() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AuthBackend:   strings.ToLower(strings.TrimSpace(getEnv("AUTH_BACKEND", AuthBackendStatic))),
		LoginUsername: getEnv("LOGIN_USERNAME", "sameer"),
		LoginPassword: getEnv("LOGIN_PASSWORD", "sameer@123"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "stay_booking"),

		SessionBackend: strings.ToLower(strings.TrimSpace(getEnv("SESSION_BACKEND", SessionBackendMemory))),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 0),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),

		RequireLogin:   getEnvAsBool("REQUIRE_LOGIN", false),
		MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_BYTES", 10<<20)),
		CookieSecure:   getEnvAsBool("COOKIE_SECURE", false),

		ReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getEnvAsDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
	}
}

func (c *Config) Validate() error {
	switch c.AuthBackend {
	case AuthBackendStatic, AuthBackendPostgres:
	default:
		return fmt.Errorf("unknown AUTH_BACKEND %q", c.AuthBackend)
	}
	switch c.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend)
	}
	if c.LoginUsername == "" || c.LoginPassword == "" {
		return errors.New("LOGIN_USERNAME and LOGIN_PASSWORD must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
