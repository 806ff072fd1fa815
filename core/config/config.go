package config

import (
	"reflect"
	"strings"

	"registration-manager/core/content"
	"registration-manager/core/geocode"
	"registration-manager/core/logger"
	"registration-manager/core/mailer"
	"registration-manager/core/server"
	"registration-manager/core/sheets"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SourceConfig selects where registration rows come from. Exactly one of
// File and SpreadsheetID must be set for a processing run.
type SourceConfig struct {
	// File is the path of a delimited export to read instead of the form spreadsheet.
	File string `mapstructure:"file" default:""`
	// FileLocale is the locale tag the file's rows are written in.
	FileLocale string `mapstructure:"file_locale" default:""`
	// FileHeader indicates whether the file starts with a header row to skip.
	FileHeader bool `mapstructure:"file_header" default:"true"`
	// SpreadsheetID is the form responses spreadsheet, one sheet per locale.
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
}

// RunConfig drives the processing loop.
type RunConfig struct {
	// LedgerSpreadsheetID is the master ledger. When empty the run prints
	// the parsed batch instead of committing it.
	LedgerSpreadsheetID string `mapstructure:"ledger_spreadsheet_id" default:""`
	// Loop keeps the processor running instead of exiting after one cycle.
	Loop bool `mapstructure:"loop" default:"false"`
	// IntervalSeconds is the idle time between cycles.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300"`
	// KMLFile is where the family map is written. Empty disables the export.
	KMLFile string `mapstructure:"kml_file" default:""`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Source holds configuration for the registration row source.
	Source SourceConfig `mapstructure:"source"`
	// Run holds configuration for the processing loop and ledger.
	Run RunConfig `mapstructure:"run"`
	// Sheets holds configuration for the Google Sheets client.
	Sheets sheets.Config `mapstructure:"sheets"`
	// Mail holds configuration for the SMTP transport.
	Mail mailer.Config `mapstructure:"mail"`
	// Content holds configuration for the notification template store.
	Content content.Config `mapstructure:"content"`
	// Geocode holds configuration for the geocoding provider.
	Geocode geocode.Config `mapstructure:"geocode"`
	// Ops holds configuration for the ops HTTP endpoint.
	Ops server.Config `mapstructure:"ops"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. RUN_INTERVAL_SECONDS -> run.interval_seconds)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
