package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Supplier holds the upstream order API configuration.
	Supplier SupplierConfig `mapstructure:",squash"`

	// Redis holds the submission log store configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Submissions holds retention settings for the submission log.
	Submissions SubmissionLogConfig `mapstructure:",squash"`
}

// SupplierConfig holds the endpoint and credentials for the supplier order API.
type SupplierConfig struct {
	// URL is the base URL of the supplier API.
	URL string `mapstructure:"SUPPLIER_URL" required:"true"`
	// Email is the account identifier for Basic auth. Leave empty for
	// unauthenticated access.
	Email string `mapstructure:"SUPPLIER_EMAIL"`
	// Token is the API token paired with Email.
	Token string `mapstructure:"SUPPLIER_TOKEN"`
	// TimeoutSeconds bounds a whole request, connect included.
	TimeoutSeconds int `mapstructure:"SUPPLIER_TIMEOUT_SECONDS" default:"30"`
	// ConnectTimeoutSeconds bounds dialing the supplier host.
	ConnectTimeoutSeconds int `mapstructure:"SUPPLIER_CONNECT_TIMEOUT_SECONDS" default:"10"`
}

// RedisConfig holds redis connection details.
type RedisConfig struct {
	// URL is the redis connection string.
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379"`
}

// SubmissionLogConfig holds retention settings for recorded order submissions.
type SubmissionLogConfig struct {
	// TTLHours is how long the submission log survives without new entries.
	TTLHours int `mapstructure:"SUBMISSION_TTL_HOURS" default:"24"`
	// MaxEntries caps how many submissions the log keeps.
	MaxEntries int `mapstructure:"SUBMISSION_LOG_MAX" default:"100"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
