package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Yippine/QuizForge-AI/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App     AppConfig      `mapstructure:"app" validate:"required"`
	Env     string         `mapstructure:"env" validate:"oneof=development production staging"`
	Sources []SourceConfig `mapstructure:"sources" validate:"min=1,dive"`
	Storage StorageConfig  `mapstructure:"storage"`
	Stats   StatsConfig    `mapstructure:"stats"`
	Quiz    QuizConfig     `mapstructure:"quiz"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

// SourceConfig is one question-bank document. The order of Sources is the
// merge precedence: an earlier source shadows a later duplicate id.
type SourceConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Location string `mapstructure:"location" validate:"required"`
}

type StorageConfig struct {
	Driver string       `mapstructure:"driver" validate:"oneof=memory sqlite postgres"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Conn   DBConn       `mapstructure:"conn"`
	Cfg    DBCfg        `mapstructure:"cfg"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type StatsConfig struct {
	StaleAfter time.Duration `mapstructure:"stale_after" validate:"min=0"`
}

type QuizConfig struct {
	DefaultCount     int           `mapstructure:"default_count" validate:"min=1"`
	TimerInterval    time.Duration `mapstructure:"timer_interval" validate:"min=1"`
	WarningThreshold time.Duration `mapstructure:"warning_threshold" validate:"min=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite.path", "quizforge.db")
	v.SetDefault("storage.cfg.max_open_conns", 1)
	v.SetDefault("storage.cfg.max_idle_conns", 1)
	v.SetDefault("stats.stale_after", 5*time.Minute)
	v.SetDefault("quiz.default_count", 10)
	v.SetDefault("quiz.timer_interval", 100*time.Millisecond)
	v.SetDefault("quiz.warning_threshold", time.Minute)
}

// Init reads configs/<CONFIG_NAME>.yaml (default "default"), overlaying
// environment variables and an optional .env file.
func Init() (*Config, error) {
	return Load("configs")
}

func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath(configPath)
	v.SetConfigName(configName)

	if err := v.BindEnv("env", "APP_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := v.BindEnv("storage.driver", "STORAGE_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind STORAGE_DRIVER: %w", err)
	}
	if err := v.BindEnv("storage.sqlite.path", "SQLITE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind SQLITE_PATH: %w", err)
	}
	if err := v.BindEnv("storage.conn.host", "DB_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_HOST: %w", err)
	}
	if err := v.BindEnv("storage.conn.port", "DB_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PORT: %w", err)
	}
	if err := v.BindEnv("storage.conn.user", "DB_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_USER: %w", err)
	}
	if err := v.BindEnv("storage.conn.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD: %w", err)
	}
	if err := v.BindEnv("storage.conn.name", "DB_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_NAME: %w", err)
	}
	if err := v.BindEnv("storage.conn.ssl", "DB_SSL"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_SSL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Storage.check(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s StorageConfig) check() error {
	switch s.Driver {
	case DriverSQLite:
		if s.SQLite.Path == "" {
			return errors.New("validation failed: storage.sqlite.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if s.Conn.Host == "" || s.Conn.Port == "" || s.Conn.User == "" || s.Conn.Name == "" {
			return errors.New("validation failed: storage.conn host, port, user and name are required for the postgres driver")
		}
	}
	return nil
}
