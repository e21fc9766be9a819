package config

import (
	"fmt"
	"reflect"
	"strings"

	"order-items/core/database"
	"order-items/core/lock"
	"order-items/core/logger"
	"order-items/core/server"
	"order-items/core/storage"
	"order-items/feature/lineitems"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the item service, one section per concern.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for snapshot export (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Lock holds the optional per-document redis lock.
	Lock lock.Config `mapstructure:"lock"`
	// Items holds line-item behaviour.
	Items lineitems.Config `mapstructure:"items"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// DATABASE_TABLE_PREFIX -> database.table_prefix
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := config.Server.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// `default` tag, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
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
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Empty defaults are registered too; unregistered keys are invisible to AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
