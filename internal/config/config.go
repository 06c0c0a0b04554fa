package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080" validate:"gte=1,lte=65535"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=json text"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"hexharvest"`
	Version     string `envconfig:"VERSION" default:"dev"`

	APIKey         string   `envconfig:"API_KEY" validate:"required"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
	CORSOrigins    []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// Per-client token bucket; RATE_LIMIT_PER_SECOND=0 disables it
	RateLimitPerSecond  float64 `envconfig:"RATE_LIMIT_PER_SECOND" default:"20" validate:"gte=0"`
	RateLimitBurst      int     `envconfig:"RATE_LIMIT_BURST" default:"40" validate:"gte=1"`
	RateLimitMaxClients int     `envconfig:"RATE_LIMIT_MAX_CLIENTS" default:"10000" validate:"gte=1"`

	DBUser          string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword      string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost          string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort          string        `envconfig:"DB_PORT" default:"5432"`
	DBName          string        `envconfig:"DB_NAME" default:"hexharvest"`
	DBMaxConns      int           `envconfig:"DB_MAX_CONNS" default:"10" validate:"gte=1"`
	DBMaxIdleTime   time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"5m"`
	DBMaxLifetime   time.Duration `envconfig:"DB_MAX_LIFETIME" default:"1h"`
	RunMigrations   bool          `envconfig:"RUN_MIGRATIONS" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	// Resource catalog synced at startup; a missing file is skipped
	CatalogPath string `envconfig:"CATALOG_PATH" default:"configs/resources.json"`

	Game GameConfig
}

// GameConfig holds the harvesting constants
type GameConfig struct {
	// Minutes of runtime one energy unit yields at efficiency 1.0
	BaseMinutesPerUnit float64 `envconfig:"BASE_MINUTES_PER_UNIT" default:"60" validate:"gt=0"`
	// Units of a resource an operation extracts per minute of active window
	ExtractionRatePerMinute float64 `envconfig:"EXTRACTION_RATE_PER_MINUTE" default:"0.1" validate:"gt=0"`
	// Grid rings around the harvester cell that count as in range
	InteractionRadius int `envconfig:"INTERACTION_RADIUS" default:"1" validate:"gte=0,lte=8"`
	// Number of (cell, radius) grid disks kept in memory
	ScanCacheSize int `envconfig:"SCAN_CACHE_SIZE" default:"1024" validate:"gte=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
