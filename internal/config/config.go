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
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Table    string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type Config struct {
	Port       string
	Backend    string
	StorageKey string
	DataDir    string
	DB         DBConfig
	Redis      RedisConfig
	RedisCache bool
	UndoWindow time.Duration
	Location   *time.Location
	LogLevel   string
	// RateLimit is the per-client request budget per RateWindow; 0 disables it.
	RateLimit  int
	RateWindow time.Duration
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment. Values from the given
// .env files are applied first without overriding variables already set;
// missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		Backend:    strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile)),
		StorageKey: getEnv("STORAGE_KEY", "habits"),
		DataDir:    getEnv("DATA_DIR", defaultDataDir()),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "kanso_user"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "kanso_db"),
			Table:    getEnv("DB_TABLE", "habit_slots"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	var err error

	if cfg.Redis.DB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("%w: REDIS_DB: %v", ErrInvalidConfig, err)
	}

	if cfg.RedisCache, err = strconv.ParseBool(getEnv("REDIS_CACHE", "false")); err != nil {
		return nil, fmt.Errorf("%w: REDIS_CACHE: %v", ErrInvalidConfig, err)
	}

	if cfg.UndoWindow, err = time.ParseDuration(getEnv("UNDO_WINDOW", "5s")); err != nil {
		return nil, fmt.Errorf("%w: UNDO_WINDOW: %v", ErrInvalidConfig, err)
	}
	if cfg.UndoWindow <= 0 {
		return nil, fmt.Errorf("%w: UNDO_WINDOW must be positive", ErrInvalidConfig)
	}

	if cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "0")); err != nil || cfg.RateLimit < 0 {
		return nil, fmt.Errorf("%w: RATE_LIMIT must be a non-negative integer", ErrInvalidConfig)
	}

	if cfg.RateWindow, err = time.ParseDuration(getEnv("RATE_WINDOW", "1m")); err != nil || cfg.RateWindow <= 0 {
		return nil, fmt.Errorf("%w: RATE_WINDOW must be a positive duration", ErrInvalidConfig)
	}

	if cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "Local")); err != nil {
		return nil, fmt.Errorf("%w: TIMEZONE: %v", ErrInvalidConfig, err)
	}

	switch cfg.Backend {
	case BackendFile, BackendPostgres, BackendRedis:
	default:
		return nil, fmt.Errorf("%w: unknown STORAGE_BACKEND %q", ErrInvalidConfig, cfg.Backend)
	}

	return cfg, nil
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + string(os.PathSeparator) + "kanso"
	}
	return ".kanso"
}
