package server

// Config holds configuration for the HTTP reporting server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}
