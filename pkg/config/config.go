package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	Catalog      CatalogConfig
	Redis        RedisConfig
	Slots        SlotsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseMemorySlots && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("either TIENDA_REDIS_URL or TIENDA_USE_MEMORY_SLOTS is required")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TIENDA_APP_ENV" required:"true"`
	Port         string `envconfig:"TIENDA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TIENDA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TIENDA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	DBPath      string `envconfig:"TIENDA_CATALOG_DB_PATH" default:"tienda.db"`
	SeedPath    string `envconfig:"TIENDA_CATALOG_SEED_PATH" default:"data/products.json"`
	AutoMigrate bool   `envconfig:"TIENDA_CATALOG_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TIENDA_REDIS_URL"`
	Address      string        `envconfig:"TIENDA_REDIS_ADDR"`
	Password     string        `envconfig:"TIENDA_REDIS_PASSWORD"`
	DB           int           `envconfig:"TIENDA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TIENDA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TIENDA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TIENDA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TIENDA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TIENDA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SlotsConfig names the durable slots each collection persists to and the
// channel used to announce writes to other processes.
type SlotsConfig struct {
	CartKey     string `envconfig:"TIENDA_SLOT_CART_KEY" default:"cart"`
	WishlistKey string `envconfig:"TIENDA_SLOT_WISHLIST_KEY" default:"wishlist"`
	CompareKey  string `envconfig:"TIENDA_SLOT_COMPARE_KEY" default:"compare"`
	Channel     string `envconfig:"TIENDA_SLOT_CHANNEL" default:"slots:changed"`
}

type FeatureFlagsConfig struct {
	UseMemorySlots bool `envconfig:"TIENDA_USE_MEMORY_SLOTS" default:"false"`
}
