package mailer

// Config holds configuration for the SMTP transport.
type Config struct {
	// Enabled turns notification delivery on. Disabled runs still parse and append.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Host is the SMTP server hostname.
	Host string `mapstructure:"host" default:""`
	// Port is the SMTP server port.
	Port int `mapstructure:"port" default:"587"`
	// Username is the SMTP login.
	Username string `mapstructure:"username" default:""`
	// Password is the SMTP password.
	Password string `mapstructure:"password" default:""`
	// SenderName is the display name used in the From header.
	SenderName string `mapstructure:"sender_name" default:""`
	// SenderAddress is the address used in the From header.
	SenderAddress string `mapstructure:"sender_address" default:""`
}
