package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Analysis  AnalysisConfig  `mapstructure:"analysis" validate:"required"`
	Report    ReportConfig    `mapstructure:"report" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	File  string `mapstructure:"file"` // empty means stdout
}

// AnalysisConfig holds source selection and aggregation parameters.
type AnalysisConfig struct {
	LogDir         string   `mapstructure:"log_dir" validate:"required"`
	LogFilePattern string   `mapstructure:"log_file_pattern" validate:"required,date_pattern"`
	MinSuccessRate *float64 `mapstructure:"min_success_rate" validate:"omitempty,min=0,max=1"` // nil disables the check
	ReportSize     int      `mapstructure:"report_size" validate:"min=0"`
}

// ReportConfig holds report artifact configuration.
type ReportConfig struct {
	Dir          string `mapstructure:"dir" validate:"required"`
	TemplatePath string `mapstructure:"template_path" validate:"required"`
	TopClients   int    `mapstructure:"top_clients" validate:"min=0"` // client families in a run result
}

// MetricsConfig holds batch metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the textfile export
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// SchedulerConfig holds the server-mode run schedule.
type SchedulerConfig struct {
	Interval   time.Duration `mapstructure:"interval" validate:"min=0"` // 0 disables periodic runs
	RunOnStart bool          `mapstructure:"run_on_start"`
}
