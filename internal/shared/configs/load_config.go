package configs

import (
	"fmt"
	"strings"

	"device-telemetry/internal/shared/validators"

	"github.com/spf13/viper"
)

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.step_minutes", 15)
	v.SetDefault("report.lookback_hours", 24)
	v.SetDefault("report.timezone", "UTC")
	v.SetDefault("report.max_samples", 10000)
	v.SetDefault("report.max_sessions", 100)
	v.SetDefault("export.enabled", true)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// Namespace uses mapstructure names (e.g. "Config.report.step_minutes");
	// drop the root type to get the YAML path.
	if ns := e.Namespace(); ns != "" {
		parts := strings.SplitN(ns, ".", 2)
		if len(parts) == 2 {
			field = parts[1]
		}
	}

	var msg string
	switch tag := e.Tag(); tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof", "unique", "datetime":
		msg = fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
