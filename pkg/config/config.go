package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "shop"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOP_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"SHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig controls the optional local persistence adapter. When
// disabled the engine runs purely in memory, matching the web variant of the
// original application.
type StorageConfig struct {
	Enabled       bool          `envconfig:"SHOP_STORAGE_ENABLED" default:"true"`
	Path          string        `envconfig:"SHOP_STORAGE_PATH" default:"shop.db"`
	QueueSize     int           `envconfig:"SHOP_STORAGE_QUEUE_SIZE" default:"64"`
	WriteRetries  uint64        `envconfig:"SHOP_STORAGE_WRITE_RETRIES" default:"0"`
	WriteBackoff  time.Duration `envconfig:"SHOP_STORAGE_WRITE_BACKOFF" default:"250ms"`
	HydrateWithin time.Duration `envconfig:"SHOP_STORAGE_HYDRATE_TIMEOUT" default:"5s"`
}

// CheckoutConfig selects which optional capture features are active. Card
// detail capture and address snapshotting differ between the two original
// front-end shells; both default on so the engine exposes the union.
type CheckoutConfig struct {
	CardDetails     bool `envconfig:"SHOP_CHECKOUT_CARD_DETAILS" default:"true"`
	AddressSnapshot bool `envconfig:"SHOP_CHECKOUT_ADDRESS_SNAPSHOT" default:"true"`
}
