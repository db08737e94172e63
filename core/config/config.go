package config

import (
	"reflect"
	"strings"

	"shortage-tracker/core/database"
	"shortage-tracker/core/logger"
	"shortage-tracker/core/server"
	"shortage-tracker/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full tracker configuration, assembled from the section
// configs each core package declares for itself.
type Config struct {
	// Server configures the HTTP listener and the snapshot cache.
	Server server.Config `mapstructure:"server"`
	// Storage configures the object store holding import files and reports.
	Storage storage.Config `mapstructure:"storage"`
	// Log configures the logger.
	Log logger.Config `mapstructure:"log"`
	// Database configures the inventory and user database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads configuration from the environment, with an optional .env
// file in path layered underneath. Every key falls back to the 'default'
// struct tag on its section config.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is fine; deployments set real env vars.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port and so on for every nested key.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the config struct and registers each leaf field's
// 'default' tag with viper, which also makes the key visible to
// AutomaticEnv.
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

		// Register even empty defaults so the key exists for AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
