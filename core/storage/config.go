package storage

import (
	"errors"
	"strings"
)

// Config holds configuration for the S3-compatible backend.
type Config struct {
	// Endpoint is the URL of the storage service, e.g. http://localhost:9000.
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Region is the signing region (any value works for most S3-compatible servers).
	Region string `mapstructure:"region" default:"us-east-1"`
	// UseInstanceProfile takes credentials from the host's IAM role instead of the static keys.
	UseInstanceProfile bool `mapstructure:"use_instance_profile" default:"false"`
	// UseSSL selects TLS when Endpoint carries no scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

var (
	ErrMissingEndpoint  = errors.New("storage: endpoint is required")
	ErrMissingAccessKey = errors.New("storage: access key is required")
	ErrMissingSecretKey = errors.New("storage: secret key is required")
)

// Validate reports the first missing required field. Endpoint and static
// credentials are optional only in instance-profile mode.
func (c Config) Validate() error {
	if c.UseInstanceProfile {
		return nil
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return ErrMissingEndpoint
	}
	if strings.TrimSpace(c.AccessKey) == "" {
		return ErrMissingAccessKey
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return ErrMissingSecretKey
	}
	return nil
}
