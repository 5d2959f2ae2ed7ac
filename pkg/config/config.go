package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the .env file once. SELFHQ_ENV_FILE overrides its location; a missing
// file is not an error so that plain environment variables work in containers.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("SELFHQ_ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		err := godotenv.Load(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Error("loading envs error", slog.String("file", path), slog.String("error", err.Error()))
				os.Exit(1)
			}
			slog.Warn("env file not found, using process environment", slog.String("file", path))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
