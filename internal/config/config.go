// Package config supplies environment-variable defaults for the CLI.
// Flags override everything here; nothing is persisted.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the tunable defaults.
//
//	ALBUMARTISTER_EXTENSIONS  comma-separated extension list (default ".mp3")
//	ALBUMARTISTER_REPORT_DIR  directory for the JSON run summary (default none)
type Config struct {
	Extensions []string `envconfig:"EXTENSIONS" default:".mp3"`
	ReportDir  string   `envconfig:"REPORT_DIR"`
}

// Load reads the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("albumartister", &cfg)
	return cfg, err
}
