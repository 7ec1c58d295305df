package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	SeedDemo  bool   `env:"SEED_DEMO,  default=false"`

	SQLite SQLiteConfig
	Redis  RedisConfig
}

type SQLiteConfig struct {
	// DSN is passed to the sqlite driver. The default keeps everything in
	// memory on a single shared connection, like the original deployment.
	DSN string `env:"SQLITE_DSN, default=file::memory:?cache=shared"`
}

type RedisConfig struct {
	// Enabled gates the login throttle; the service runs fine without redis.
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
