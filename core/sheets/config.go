package sheets

// Config holds configuration for the Google Sheets client.
type Config struct {
	// CredentialsFile is the path to the service account JSON key.
	CredentialsFile string `mapstructure:"credentials_file" default:"credentials.json"`
	// TimeoutSeconds is the per-call timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
