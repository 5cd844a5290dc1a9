package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int           `mapstructure:"APP_PORT"`
	DatabasePath string        `mapstructure:"DATABASE_PATH"`
	OllamaURL    string        `mapstructure:"OLLAMA_URL"`
	RedisAddr    string        `mapstructure:"REDIS_ADDR"`
	CacheTTL     time.Duration `mapstructure:"CACHE_TTL"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads a .env file if one exists, then lets the environment
// override it. Empty OLLAMA_URL and REDIS_ADDR disable those integrations.
func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/catalog.db")
	viper.SetDefault("OLLAMA_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
