package configs

import (
	"errors"
	"fmt"
	"strings"

	"log-analyzer/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LOG_ANALYZER_ANALYSIS_REPORT_SIZE.
const EnvPrefix = "LOG_ANALYZER"

var defaults = map[string]any{
	"log.level":                  "info",
	"log.file":                   "",
	"analysis.log_dir":           "./log",
	"analysis.log_file_pattern":  `^nginx-access-ui\.log-(?P<date>\d{8})(\.gz|\.zst)?$`,
	"analysis.report_size":       1000,
	"report.dir":                 "./reports",
	"report.template_path":       "./configs/report.html",
	"report.top_clients":         5,
	"metrics.textfile_path":      "",
	"server.port":                8080,
	"server.read_header_timeout": 5,
	"server.read_timeout":        10,
	"server.write_timeout":       30,
	"server.idle_timeout":        60,
	"scheduler.interval":         "0s",
	"scheduler.run_on_start":     false,
}

// LoadConfig reads configuration from defaults, file and environment, then validates it.
// An empty configPath loads defaults and environment only.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// min_success_rate has no default; bind it so env overrides are seen by Unmarshal
	_ = v.BindEnv("analysis.min_success_rate")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var ve validators.ValidationErrors
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		validationErrors := make([]string, 0, len(ve))
		for _, e := range ve {
			validationErrors = append(validationErrors, formatValidationError(e))
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "Config.Analysis.ReportSize" -> "analysis.reportsize")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	case validators.TagDatePattern:
		return fmt.Sprintf("%s (regexp with a named group \"date\")", field)
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
