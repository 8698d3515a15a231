package db

import (
	"path/filepath"
	"testing"

	"github.com/Yippine/QuizForge-AI/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLite(t *testing.T) {
	t.Parallel()

	cfg := config.StorageConfig{
		Driver: config.DriverSQLite,
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "quizforge.db")},
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	}

	db, err := InitDB(cfg)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM kv_store"))
	assert.Equal(t, 0, count)
}

func TestDataSource(t *testing.T) {
	t.Parallel()

	driver, dsn, err := dataSource(config.StorageConfig{
		Driver: config.DriverPostgres,
		Conn:   config.DBConn{Host: "localhost", Port: "5432", User: "quiz", Password: "secret", Name: "quizforge", SSL: "disable"},
	})
	require.NoError(t, err)
	assert.Equal(t, "postgres", driver)
	assert.Equal(t, "host=localhost port=5432 dbname=quizforge user=quiz password=secret sslmode=disable", dsn)

	_, _, err = dataSource(config.StorageConfig{Driver: config.DriverMemory})
	assert.Error(t, err)
}
