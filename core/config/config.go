package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"storage-gateway/core/database"
	"storage-gateway/core/logger"
	"storage-gateway/core/server"
	"storage-gateway/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the S3-compatible backend.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional audit database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from path/.env, an optional
// path/config.yaml and environment variables, in increasing precedence.
func LoadConfig(path string) (*Config, error) {
	// .env values override the process environment when the file exists.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	setDefaults(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. STORAGE_ACCESS_KEY -> storage.access_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &config, nil
}

// Validate checks the sections that must be complete before startup.
func (c *Config) Validate() error {
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if c.Database.Enabled() && !c.Database.SupportedDriver() {
		return fmt.Errorf("database: unsupported driver %q", c.Database.Driver)
	}
	return nil
}

// setDefaults walks the struct and registers every 'mapstructure' key with
// its 'default' tag value.
func setDefaults(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set a default, even an empty one, so AutomaticEnv sees the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
