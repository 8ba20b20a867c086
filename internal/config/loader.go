package config

import (
	"fmt"

	"github.com/spf13/viper"

	"qr-supercharge/internal/constants"
	"qr-supercharge/internal/validation"
)

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("CACHE_EXPIRATION_MINUTES", constants.CacheExpiration)
	v.SetDefault("START_VERSION", constants.DefaultStartVersion)
	v.SetDefault("MAX_VERSION", constants.DefaultMaxVersion)
	v.SetDefault("MODULE_SIZE", constants.DefaultModuleSize)
	v.SetDefault("QUIET_ZONE", constants.DefaultQuietZone)
	v.SetDefault("CHECK_URL", false)

	// Define environment variables
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("SERVER_PORT")
	v.BindEnv("CACHE_EXPIRATION_MINUTES")
	v.BindEnv("START_VERSION")
	v.BindEnv("MAX_VERSION")
	v.BindEnv("MODULE_SIZE")
	v.BindEnv("QUIET_ZONE")
	v.BindEnv("CHECK_URL")

	cfg := &Config{
		LogLevel: v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:                   v.GetInt("SERVER_PORT"),
			CacheExpirationMinutes: v.GetInt("CACHE_EXPIRATION_MINUTES"),
		},
		Generator: GeneratorConfig{
			StartVersion: v.GetInt("START_VERSION"),
			MaxVersion:   v.GetInt("MAX_VERSION"),
			ModuleSize:   v.GetInt("MODULE_SIZE"),
			QuietZone:    v.GetInt("QUIET_ZONE"),
			CheckURL:     v.GetBool("CHECK_URL"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if err := validation.ValidateVersionRange(cfg.Generator.StartVersion, cfg.Generator.MaxVersion); err != nil {
		return err
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Generator.ModuleSize < 1 {
		cfg.Generator.ModuleSize = constants.DefaultModuleSize
	}
	if cfg.Generator.QuietZone < 0 {
		cfg.Generator.QuietZone = constants.DefaultQuietZone
	}
	return nil
}
