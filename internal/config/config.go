package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Backend
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	// Presentation
	Env           string `mapstructure:"APP_ENV"` // development | production
	PageSize      int    `mapstructure:"PAGE_SIZE"`
	CurrencyLabel string `mapstructure:"CURRENCY_LABEL"`
	ChartPeriod   string `mapstructure:"CHART_PERIOD"` // week | month | year

	// Downloads
	PDFDownloadDir string `mapstructure:"PDF_DOWNLOAD_DIR"`
}

// HTTPTimeout returns the configured client timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PAGE_SIZE", 10)
	viper.SetDefault("CURRENCY_LABEL", "PKR")
	viper.SetDefault("CHART_PERIOD", "week")
	viper.SetDefault("PDF_DOWNLOAD_DIR", ".")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
