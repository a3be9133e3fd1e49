package app

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the reporting tool.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// SnapshotDir is where the JSON snapshot files exported by the
	// back-office live.
	SnapshotDir string `envconfig:"SNAPSHOT_DIR" default:"./data"`

	AgencyName     string `envconfig:"AGENCY_NAME" default:"Safar Travels"`
	SourceCurrency string `envconfig:"SOURCE_CURRENCY" default:"SAR"`
	TargetCurrency string `envconfig:"TARGET_CURRENCY" default:"PKR"`
	ReportLocale   string `envconfig:"REPORT_LOCALE" default:"en"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
