package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxRetries int
	RetryDelay time.Duration
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// NewPostgresDB opens a pool and pings it, retrying while the server comes up.
func NewPostgresDB(ctx context.Context, cfg Config, logger *logging.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 10
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for i := 1; i <= maxRetries; i++ {
		logger.Info("connecting to database", "attempt", i, "max_attempts", maxRetries)
		if err = db.PingContext(ctx); err == nil {
			logger.Info("database connected")
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		logger.Warn("database not ready yet", "error", err, "retry_in", delay.String())
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("connect database after %d attempts: %w", maxRetries, err)
}

const credentialsSchema = `
CREATE TABLE IF NOT EXISTS login_credentials (
	username      TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the tables the credential provider reads.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, credentialsSchema); err != nil {
		return fmt.Errorf("create login_credentials: %w", err)
	}
	return nil
}
