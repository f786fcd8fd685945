package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init loads configuration from config.yaml (if present) and then applies
// environment variable overrides. Missing file is not an error so the service
// can run from environment alone.
func Init() {
	Get()
}

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() {
		cfg := defaults()

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err == nil {
			_ = v.Unmarshal(cfg)
		}

		_ = envconfig.Process("SAHABAT3T", cfg)

		instance = cfg
	})
	return instance
}

func defaults() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		Storage: Storage{
			Home:    "./uploads",
			MaxSize: 10 << 20,
		},
		Registry: Registry{
			BaseURL:  "https://api-sekolah-indonesia.vercel.app",
			CacheTTL: 86400,
		},
		JWT: JWT{
			AccessSecret: "sahabat3t-dev-secret",
			AccessExpire: 86400,
		},
		Log: Log{
			Level: "info",
		},
	}
}
