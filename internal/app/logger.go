package app

import (
	"log/slog"
	"os"
)

// NewLogger returns a configured slog.Logger. Production always emits JSON
// so log shippers never see the pretty text format.
func NewLogger(cfg *Config) *slog.Logger {
	if cfg != nil && (cfg.LogFormat == "json" || cfg.IsProduction()) {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
