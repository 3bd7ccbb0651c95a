package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
	Export      ExportConfig      `mapstructure:"export"`
	Devices     []DeviceConfig    `mapstructure:"devices" validate:"required,min=1,unique=Name,dive"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ReportConfig holds the defaults used when a session does not specify its own window.
type ReportConfig struct {
	StepMinutes   int    `mapstructure:"step_minutes" validate:"required,min=1,max=1440"`
	LookbackHours int    `mapstructure:"lookback_hours" validate:"required,min=1"`
	Start         string `mapstructure:"start" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"` // fixed window start; empty means now - lookback
	Timezone      string `mapstructure:"timezone" validate:"required,timezone"`
	MaxSamples    int    `mapstructure:"max_samples" validate:"required,min=1"`  // per device series
	MaxSessions   int    `mapstructure:"max_sessions" validate:"required,min=1"` // held in memory
}

// ExportConfig controls writing session snapshots to file storage.
type ExportConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DeviceConfig is the static traffic budget of one simulated device.
type DeviceConfig struct {
	Name          string `mapstructure:"name" validate:"required"`
	TotalPackets  int64  `mapstructure:"total_packets" validate:"required,min=1"`
	TotalRequests int64  `mapstructure:"total_requests" validate:"required,min=1"`
}
