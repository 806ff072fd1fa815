package server

// Config holds configuration for the ops HTTP server.
type Config struct {
	// Enabled turns the ops endpoint on. The processor runs fine without it.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8081"`
}
