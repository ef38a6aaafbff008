package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port            int    `mapstructure:"PORT"`
	Env             string `mapstructure:"APP_ENV"` // development | production
	RateLimitPerMin int    `mapstructure:"RATE_LIMIT_PER_MIN"`

	// Inventory
	AlmacenDefault string `mapstructure:"ALMACEN_DEFAULT"`
	// SeedDemo loads a small deterministic demo inventory at startup so the
	// console has something to show against an empty process.
	SeedDemo bool `mapstructure:"SEED_DEMO"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("RATE_LIMIT_PER_MIN", 1000)
	viper.SetDefault("ALMACEN_DEFAULT", "Bodega Central")
	viper.SetDefault("SEED_DEMO", true)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
