package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Storage     StorageConfig
	Database    database.PostgresConfig
	Redis       database.RedisConfig
	JWT         JWTConfig
	Identity    IdentityConfig
	FileStorage FileStorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// StorageConfig selects the record store backend.
// Backend is one of memory, file, redis, postgres.
type StorageConfig struct {
	Backend        string `env:"STORAGE_BACKEND" envDefault:"memory"`
	FileDir        string `env:"STORAGE_FILE_DIR" envDefault:"./.data/records"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"db/migrations"`
	ChangeChannel  string `env:"CHANGE_CHANNEL" envDefault:"artistly:changes"`
	SeedDemoData   bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string        `env:"JWT_SECRET" envDefault:"default-dev-secret"`
	Expiry time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

// IdentityConfig tunes the mock credential check
type IdentityConfig struct {
	LoginDelay time.Duration `env:"LOGIN_DELAY" envDefault:"1s"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}

// FileStorageConfig holds profile image storage configuration
type FileStorageConfig struct {
	UseS3            bool   `env:"USE_S3" envDefault:"false"`
	S3Region         string `env:"S3_REGION" envDefault:"ap-south-1"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	S3PublicEndpoint string `env:"S3_PUBLIC_ENDPOINT"`
	S3AccessKey      string `env:"S3_ACCESS_KEY"`
	S3SecretKey      string `env:"S3_SECRET_KEY"`
	S3BucketName     string `env:"S3_BUCKET"`
	S3UseSSL         bool   `env:"S3_USE_SSL" envDefault:"true"`
	LocalPath        string `env:"LOCAL_STORAGE_PATH" envDefault:"./uploads"`
	LocalBaseURL     string `env:"LOCAL_STORAGE_URL" envDefault:"http://localhost:8080/uploads"`
}

var backends = map[string]bool{
	"memory":   true,
	"file":     true,
	"redis":    true,
	"postgres": true,
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !backends[cfg.Storage.Backend] {
		return Config{}, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}
	if cfg.FileStorage.S3PublicEndpoint == "" {
		cfg.FileStorage.S3PublicEndpoint = cfg.FileStorage.S3Endpoint
	}
	return cfg, nil
}
