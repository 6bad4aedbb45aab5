package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string `env:"PORT,              default=8080"`
	Env             string `env:"ENV,               default=development"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLSeconds int    `env:"TOKEN_TTL_SECONDS, default=3600"`
	LogLevel        string `env:"LOG_LEVEL,         default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Admin  AdminConfig
	Upload UploadConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminConfig controls the default-admin bootstrap. ResetOnBoot re-hashes the
// configured password on every start; leave it off outside controlled
// deployments since anyone restarting the process resets the admin password.
type AdminConfig struct {
	Username    string `env:"ADMIN_USERNAME,      default=admin"`
	Password    string `env:"ADMIN_PASSWORD,      default=admin123"`
	ResetOnBoot bool   `env:"ADMIN_RESET_ON_BOOT, default=false"`
}

type UploadConfig struct {
	Dir       string `env:"UPLOAD_DIR,         default=uploads"`
	MaxSizeMB int64  `env:"UPLOAD_MAX_SIZE_MB, default=15"`
}

// TokenTTL returns the configured token validity window.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// MaxBytes returns the upload size cap in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxSizeMB << 20
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
