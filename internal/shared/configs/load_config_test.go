package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
report:
  step_minutes: 15
  lookback_hours: 22
  start: "2024-11-26T00:00:00Z"
  timezone: UTC
  max_samples: 5000
  max_sessions: 10
export:
  enabled: false
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
  - name: Google Nest
    total_packets: 18000
    total_requests: 12000
`

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, validConfig)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, 15, cfg.Report.StepMinutes)
	assert.Equal(t, 22, cfg.Report.LookbackHours)
	assert.Equal(t, "2024-11-26T00:00:00Z", cfg.Report.Start)
	assert.Equal(t, "UTC", cfg.Report.Timezone)
	assert.Equal(t, 5000, cfg.Report.MaxSamples)
	assert.Equal(t, 10, cfg.Report.MaxSessions)
	assert.False(t, cfg.Export.Enabled)
	assert.Equal(t, []DeviceConfig{
		{Name: "Amazon Echo", TotalPackets: 20000, TotalRequests: 15000},
		{Name: "Google Nest", TotalPackets: 18000, TotalRequests: 12000},
	}, cfg.Devices)
}

func TestLoadConfig_AppliesReportDefaults(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Report.StepMinutes)
	assert.Equal(t, 24, cfg.Report.LookbackHours)
	assert.Equal(t, "", cfg.Report.Start)
	assert.Equal(t, "UTC", cfg.Report.Timezone)
	assert.Equal(t, 10000, cfg.Report.MaxSamples)
	assert.Equal(t, 100, cfg.Report.MaxSessions)
	assert.True(t, cfg.Export.Enabled)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		expectedMsg string
	}{
		{
			name: "missing port",
			config: `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
`,
			expectedMsg: "server.port (required)",
		},
		{
			name: "port out of range",
			config: `server:
  port: 70000
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
`,
			expectedMsg: "server.port (max=65535)",
		},
		{
			name: "missing file storage root dir",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage: {}
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
`,
			expectedMsg: "file_storage.root_dir (required)",
		},
		{
			name: "no devices",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
`,
			expectedMsg: "devices (required)",
		},
		{
			name: "duplicate device names",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
  - name: Amazon Echo
    total_packets: 100
    total_requests: 100
`,
			expectedMsg: "devices (unique=Name)",
		},
		{
			name: "zero packet budget",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
devices:
  - name: Amazon Echo
    total_packets: 0
    total_requests: 15000
`,
			expectedMsg: "devices[0].total_packets (required)",
		},
		{
			name: "invalid timezone",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
report:
  timezone: Mars/Olympus
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
`,
			expectedMsg: "report.timezone (timezone)",
		},
		{
			name: "malformed window start",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
report:
  start: "26/11/2024"
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
`,
			expectedMsg: "report.start (datetime=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.config)

			cfg, err := LoadConfig(path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.expectedMsg)
		})
	}
}

func TestLoadConfig_InvalidLogLevelIsNotValidated(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: invalid
file_storage:
  root_dir: ./data
devices:
  - name: Amazon Echo
    total_packets: 20000
    total_requests: 15000
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "invalid", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("./does-not-exist.yml")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}
