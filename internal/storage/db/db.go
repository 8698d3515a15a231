package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/config"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
    storage_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// InitDB opens the durable key-value store for the sqlite or postgres driver
// and makes sure its table exists.
func InitDB(cfg config.StorageConfig) (*sqlx.DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

func dataSource(cfg config.StorageConfig) (string, string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return "sqlite", cfg.SQLite.Path, nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
		return "postgres", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
