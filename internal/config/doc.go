// Package config provides configuration management for artic-table.
//
// This package handles:
//   - Default configuration values
//   - Loading and saving settings from JSON or YAML files
//   - .env files and ARTIC_* environment overrides
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Catalog at https://api.artic.edu/api/v1
//	// 12 rows per page, 30 second request timeout
//
// # Loading
//
// Sources are applied in this order, later ones winning:
//
//	settings, err := config.Load("artic.yaml") // defaults if missing
//	_ = config.LoadEnvFiles()                   // .env into the environment
//	err = settings.ApplyEnv()                   // ARTIC_PAGE_SIZE=24 ...
//	err = settings.Validate()
//
// Command-line flags are applied on top by the CLI.
//
// # Environment Variables
//
//   - ARTIC_BASE_URL
//   - ARTIC_USER_AGENT
//   - ARTIC_PAGE_SIZE
//   - ARTIC_REQUEST_TIMEOUT_SECONDS
//   - ARTIC_LOG_LEVEL
//   - ARTIC_LOG_FILE
//   - ARTIC_METRICS_ADDR
package config
