package config

import (
	"reflect"
	"strings"

	"tvgu-data-hub/core/database"
	"tvgu-data-hub/core/logger"
	"tvgu-data-hub/core/server"
	"tvgu-data-hub/core/storage"
	"tvgu-data-hub/feature/export"
	"tvgu-data-hub/feature/hub"
	"tvgu-data-hub/feature/sources"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Hub holds the teacher resolver switches.
	Hub hub.Config `mapstructure:"hub"`
	// Sources selects where upstream documents are read from.
	Sources sources.Config `mapstructure:"sources"`
	// Output holds dataset export settings.
	Output export.Config `mapstructure:"output"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// legacyEnv maps keys to the bare environment names the scraper deployment already uses.
var legacyEnv = map[string]string{
	"hub.use_heuristics_for_teachers": "USE_HEURISTICS_FOR_TEACHERS",
	"hub.skip_unrecognized_teachers":  "SKIP_UNRECOGNIZED_TEACHERS",
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings win over AutomaticEnv; the prefixed name is listed first.
	for key, legacy := range legacyEnv {
		prefixed := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers a default for every `mapstructure` field, recursing into nested
// structs, so that AutomaticEnv can resolve them.
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

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
