// Package config provides configuration management for the registration processor.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with struct-tag defaults.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Source: registration row input (CSV file or form spreadsheet)
//   - Run: ledger spreadsheet, loop interval, KML export path
//   - Sheets: Google service account credentials
//   - Mail: SMTP transport and sender identity
//   - Content: notification template root and default locale
//   - Geocode: Google Maps API key
//   - Ops: optional HTTP endpoint for health, status and metrics
//   - Log: logging level and format
//
// Every leaf key is also reachable through the environment, upper-cased with
// dots replaced by underscores (run.interval_seconds -> RUN_INTERVAL_SECONDS).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Run.IntervalSeconds)
package config
