package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name: "success with defaults",
			body: `
sources:
  - name: a
    location: a.json
  - name: b
    location: https://example.com/b.json
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Sources, 2)
				assert.Equal(t, "a", cfg.Sources[0].Name)
				assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
				assert.Equal(t, "quizforge.db", cfg.Storage.SQLite.Path)
				assert.Equal(t, 5*time.Minute, cfg.Stats.StaleAfter)
				assert.Equal(t, 100*time.Millisecond, cfg.Quiz.TimerInterval)
				assert.Equal(t, 10, cfg.Quiz.DefaultCount)
				assert.Equal(t, "development", cfg.Env)
			},
		},
		{
			name:    "no sources",
			body:    "env: production\n",
			wantErr: true,
		},
		{
			name: "unknown driver",
			body: `
sources:
  - name: a
    location: a.json
storage:
  driver: redis
`,
			wantErr: true,
		},
		{
			name: "postgres without connection",
			body: `
sources:
  - name: a
    location: a.json
storage:
  driver: postgres
`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_NAME", "default")
			t.Setenv("STORAGE_DRIVER", "")

			cfg, err := Load(writeConfig(t, tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_NAME", "absent")

	_, err := Load(t.TempDir())
	require.Error(t, err)
}
