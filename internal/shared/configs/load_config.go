package configs

import (
	"fmt"
	"strings"

	"wifi-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. WIFI_LOG_LEVEL or WIFI_SCAN_WORKERS.
const EnvPrefix = "WIFI"

// LoadConfig reads configuration from file, applies environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// Environment overrides only apply to keys viper knows, hence the defaults above.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.request_timeout", 240)
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("file_storage.root_dir", "")
	v.SetDefault("file_storage.bucket_url", "")
	v.SetDefault("dataset.log_key", "")
	v.SetDefault("dataset.access_points_key", "")
	v.SetDefault("vendors.registry_key", "")
	v.SetDefault("scan.workers", 0)
	v.SetDefault("scan.chunk_bytes", 0)
	v.SetDefault("scan.queue_buffer", 0)
	v.SetDefault("reports.prefix", "reports")
	v.SetDefault("reports.chart_width", 0)
	v.SetDefault("reports.chart_height", 0)
	v.SetDefault("reports.chart_caption", "")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "required_without":
		msg = fmt.Sprintf("%s (required unless %s is set)", field, strings.ToLower(e.Param()))
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
