// Package db handles database connection setup, schema migration, and
// seeding of the article catalog.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"localnews/pkg/config"
)

// DefaultSQLitePath is the file created on first run when no
// DATABASE_URL is configured.
const DefaultSQLitePath = "database/news.db"

// Kind identifies which driver a connection was opened with. The
// persistence adapter is chosen from it.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open creates and configures a database connection pool.
// When DATABASE_URL is set it connects to PostgreSQL via pgx; otherwise
// it opens (creating if necessary) the SQLite file at SQLITE_PATH or
// DefaultSQLitePath, creating the parent directory on first run.
func Open() (*sql.DB, Kind, error) {
	driver, dsn, kind := resolveDSN()

	if kind == KindSQLite {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, kind, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, kind, fmt.Errorf("open database: %w", err)
	}

	cfg := connectionConfigFromEnv(kind)
	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	database.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, kind, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connection established",
		slog.String("kind", string(kind)),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns))

	return database, kind, nil
}

func resolveDSN() (driver, dsn string, kind Kind) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return "pgx", url, KindPostgres
	}
	path := config.GetEnvString("SQLITE_PATH", DefaultSQLitePath)
	return "sqlite3", path, KindSQLite
}

// connectionConfigFromEnv reads pool configuration from environment
// variables, falling back to defaults. The SQLite driver serializes
// writes through a single file handle, so it gets a single connection.
func connectionConfigFromEnv(kind Kind) ConnectionConfig {
	cfg := DefaultConnectionConfig()
	if kind == KindSQLite {
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
	}

	cfg.MaxOpenConns = config.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns)
	cfg.MaxIdleConns = config.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns)
	cfg.ConnMaxLifetime = config.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime)
	cfg.ConnMaxIdleTime = config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime)

	return cfg
}
