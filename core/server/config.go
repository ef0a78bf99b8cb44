package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Environment is the deployment environment (development, production).
	Environment string `mapstructure:"environment" default:"production"`
	// BodyLimitMB is the maximum accepted request body size in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"100"`
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// IsDevelopment reports whether error responses may expose internal details.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.Environment) {
	case EnvDevelopment, "dev":
		return true
	default:
		return false
	}
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 100 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
