package config

import (
	"fmt"
	"strings"

	"github.com/chayanon-dev/lineadmin/pkg/enums"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "LINEADMIN"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LINEADMIN_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"LINEADMIN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LINEADMIN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SessionConfig holds the ambient defaults for a catalog session. These
// knobs never change pricing or cart semantics.
type SessionConfig struct {
	DefaultTier string `envconfig:"LINEADMIN_SESSION_DEFAULT_TIER" default:"bronze"`
}

func (s SessionConfig) validate() error {
	if _, err := enums.ParseCustomerTier(s.DefaultTier); err != nil {
		return fmt.Errorf("invalid session default tier: %w", err)
	}
	return nil
}

// Tier returns the configured default tier.
func (s SessionConfig) Tier() enums.CustomerTier {
	tier, err := enums.ParseCustomerTier(s.DefaultTier)
	if err != nil {
		return enums.CustomerTierBronze
	}
	return tier
}
