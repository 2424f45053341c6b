package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs all issued tokens. Set once at startup; rotating it
	// invalidates every outstanding token.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=30m"`

	Mongo        MongoConfig
	Redis        RedisConfig
	DefaultAdmin DefaultAdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DefaultAdminConfig describes the bootstrap admin seeded when no admin
// exists yet.
type DefaultAdminConfig struct {
	Name     string `env:"DEFAULT_ADMIN_NAME,     default=admin"`
	Password string `env:"DEFAULT_ADMIN_PASSWORD, default=admin123"`
	Age      int    `env:"DEFAULT_ADMIN_AGE,      default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
