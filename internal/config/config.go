package config

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Generator GeneratorConfig `mapstructure:"generator"`
	LogLevel  string          `mapstructure:"log_level"`
}

// ServerConfig holds the HTTP API configuration
type ServerConfig struct {
	Port                   int `mapstructure:"port"`
	CacheExpirationMinutes int `mapstructure:"cache_expiration_minutes"`
}

// GeneratorConfig holds the QR generation defaults
type GeneratorConfig struct {
	StartVersion int  `mapstructure:"start_version"`
	MaxVersion   int  `mapstructure:"max_version"`
	ModuleSize   int  `mapstructure:"module_size"`
	QuietZone    int  `mapstructure:"quiet_zone"`
	CheckURL     bool `mapstructure:"check_url"`
}
