package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 300
  idle_timeout: 60
  request_timeout: 120
  shutdown_timeout: 15
log:
  level: debug
file_storage:
  root_dir: ./data
dataset:
  log_key: datasets/logs-conexion.csv.zst
  access_points_key: datasets/aps.csv
vendors:
  registry_key: datasets/oui.txt
scan:
  workers: 8
  chunk_bytes: 1048576
reports:
  prefix: out/reports
  chart_width: 1433
  chart_height: 860
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configs.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 300, cfg.Server.WriteTimeout)
	assert.Equal(t, 120, cfg.Server.RequestTimeout)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Empty(t, cfg.FileStorage.BucketURL)
	assert.Equal(t, "datasets/logs-conexion.csv.zst", cfg.Dataset.LogKey)
	assert.Equal(t, "datasets/aps.csv", cfg.Dataset.AccessPointsKey)
	assert.Equal(t, "datasets/oui.txt", cfg.Vendors.RegistryKey)
	assert.Equal(t, 8, cfg.Scan.Workers)
	assert.Equal(t, 1048576, cfg.Scan.ChunkBytes)
	assert.Equal(t, "out/reports", cfg.Reports.Prefix)
	assert.Equal(t, 1433, cfg.Reports.ChartWidth)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, `file_storage:
  bucket_url: mem://
dataset:
  log_key: logs.csv
  access_points_key: aps.csv
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 240, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "mem://", cfg.FileStorage.BucketURL)
	assert.Equal(t, "reports", cfg.Reports.Prefix)
	assert.Zero(t, cfg.Scan.Workers)
	assert.Empty(t, cfg.Vendors.RegistryKey)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("WIFI_LOG_LEVEL", "warn")
	t.Setenv("WIFI_SCAN_WORKERS", "3")
	t.Setenv("WIFI_DATASET_LOG_KEY", "other.csv.gz")

	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Scan.Workers)
	assert.Equal(t, "other.csv.gz", cfg.Dataset.LogKey)
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   string
		contains string
	}{
		{
			name: "port out of range",
			config: `server:
  port: 70000
file_storage:
  root_dir: ./data
dataset:
  log_key: logs.csv
  access_points_key: aps.csv
`,
			contains: "server.port (max=65535)",
		},
		{
			name: "no storage",
			config: `dataset:
  log_key: logs.csv
  access_points_key: aps.csv
`,
			contains: "filestorage.rootdir (required unless bucketurl is set)",
		},
		{
			name: "missing dataset keys",
			config: `file_storage:
  root_dir: ./data
`,
			contains: "dataset.logkey (required)",
		},
		{
			name: "tiny chunks",
			config: `file_storage:
  root_dir: ./data
dataset:
  log_key: logs.csv
  access_points_key: aps.csv
scan:
  chunk_bytes: 10
`,
			contains: "scan.chunkbytes (min=64)",
		},
		{
			name: "too many workers",
			config: `file_storage:
  root_dir: ./data
dataset:
  log_key: logs.csv
  access_points_key: aps.csv
scan:
  workers: 1000
`,
			contains: "scan.workers (max=256)",
		},
		{
			name: "unknown log format",
			config: `log:
  format: xml
file_storage:
  root_dir: ./data
dataset:
  log_key: logs.csv
  access_points_key: aps.csv
`,
			contains: "log.format (oneof=json console)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadConfig(writeConfig(t, tt.config))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
