package server

import (
	"fmt"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies; a full item submission is small.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"4"`
}

// Validate checks that the port is a usable TCP port.
func (c Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid server port: %q", c.Port)
	}
	return nil
}

// BodyLimit returns the body limit in bytes, defaulting to 4MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
