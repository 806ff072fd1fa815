package geocode

// Config holds configuration for the geocoding provider.
type Config struct {
	// Enabled turns address resolution on for the map export.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// APIKey is the Google Maps Platform API key.
	APIKey string `mapstructure:"api_key" default:""`
}
