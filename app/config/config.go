// Package config provides Viper-based configuration for the fluxdevs client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete client configuration.
type Config struct {
	Services   ServicesConfig   `mapstructure:"services"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Onboarding OnboardingConfig `mapstructure:"onboarding"`
	Payment    PaymentConfig    `mapstructure:"payment"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServicesConfig holds the backend base URLs.
type ServicesConfig struct {
	IdentityURL string `mapstructure:"identity_url"`
	BillingURL  string `mapstructure:"billing_url"`
	PaymentURL  string `mapstructure:"payment_url"`
}

// HTTPConfig tunes the shared REST client.
type HTTPConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	RequestsPer float64       `mapstructure:"requests_per_second"`
	Burst       int           `mapstructure:"burst"`
}

// StorageConfig locates the persisted session snapshot.
type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

// OnboardingConfig tunes the wizard's availability check.
type OnboardingConfig struct {
	NameCheckDebounce time.Duration `mapstructure:"name_check_debounce"`
	MinNameLength     int           `mapstructure:"min_name_length"`
}

// PaymentConfig tunes the provider checkout round trip.
type PaymentConfig struct {
	Provider      string        `mapstructure:"provider"`
	AppScheme     string        `mapstructure:"app_scheme"`
	CallbackAddr  string        `mapstructure:"callback_addr"`
	RedirectDelay time.Duration `mapstructure:"redirect_delay"`
}

// CallbackURL returns the provider return URL. The http scheme targets the
// local callback listener; any other scheme is a custom deep link.
func (p PaymentConfig) CallbackURL() string {
	if p.AppScheme == "" || p.AppScheme == "http" {
		return fmt.Sprintf("http://%s/payment-callback", p.CallbackAddr)
	}
	return fmt.Sprintf("%s://payment-callback", p.AppScheme)
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and FLUXDEVS_-prefixed environment
// variables. A missing config file is fine; defaults cover everything.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".fluxdevs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fluxdevs")
	}

	v.SetEnvPrefix("FLUXDEVS")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("services.identity_url", "http://localhost:8000/api/v1")
	v.SetDefault("services.billing_url", "http://localhost:8000/api/v1")
	v.SetDefault("services.payment_url", "http://localhost:8000/api/v1")

	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.requests_per_second", 10.0)
	v.SetDefault("http.burst", 5)

	v.SetDefault("storage.dir", defaultStorageDir())

	v.SetDefault("onboarding.name_check_debounce", 500*time.Millisecond)
	v.SetDefault("onboarding.min_name_length", 3)

	v.SetDefault("payment.provider", "paystack")
	v.SetDefault("payment.app_scheme", "http")
	v.SetDefault("payment.callback_addr", "localhost:4280")
	v.SetDefault("payment.redirect_delay", 3*time.Second)

	v.SetDefault("logging.level", "info")
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fluxdevs"
	}
	return filepath.Join(home, ".fluxdevs")
}

func validate(cfg *Config) error {
	if cfg.Services.IdentityURL == "" {
		return fmt.Errorf("services.identity_url is required")
	}
	if cfg.Services.BillingURL == "" {
		return fmt.Errorf("services.billing_url is required")
	}
	if cfg.Services.PaymentURL == "" {
		return fmt.Errorf("services.payment_url is required")
	}

	if cfg.HTTP.Timeout < time.Second {
		return fmt.Errorf("http.timeout must be at least 1s, got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.RequestsPer <= 0 {
		return fmt.Errorf("http.requests_per_second must be positive, got %v", cfg.HTTP.RequestsPer)
	}

	if cfg.Onboarding.MinNameLength < 1 {
		return fmt.Errorf("onboarding.min_name_length must be at least 1, got %d", cfg.Onboarding.MinNameLength)
	}

	validProviders := map[string]bool{"paystack": true, "flutterwave": true}
	if !validProviders[cfg.Payment.Provider] {
		return fmt.Errorf("invalid payment.provider: %s (must be paystack or flutterwave)", cfg.Payment.Provider)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging.level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	return nil
}
