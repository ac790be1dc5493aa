package server

// Config holds configuration for the HTTP server started by the serve command.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}
