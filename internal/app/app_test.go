package app

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"wifi-analytics/internal/records/recordstest"
	"wifi-analytics/internal/reports"
	"wifi-analytics/internal/shared/configs"
	"wifi-analytics/internal/shared/filestorages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	apID     = "40A6E8:6C:5B:05"
	deviceID = "4C3C16:46:65:62"
	since    = int64(1607173201)
)

func testConfig(rootDir string) *configs.Config {
	return &configs.Config{
		Log:         configs.LogConfig{Level: "error"},
		FileStorage: configs.FileStorageConfig{RootDir: rootDir},
		Dataset: configs.DatasetConfig{
			LogKey:          "datasets/logs.csv",
			AccessPointsKey: "datasets/aps.csv",
		},
		Scan: configs.ScanConfig{Workers: 2, ChunkBytes: 128},
	}
}

func seed(t *testing.T, rootDir string, files map[string]string) {
	t.Helper()
	storage, err := filestorages.NewFileStorage(rootDir)
	require.NoError(t, err)
	for key, content := range files {
		_, err := storage.Put(context.Background(), key, strings.NewReader(content), filestorages.PutOptions{AllowOverwrite: true})
		require.NoError(t, err)
	}
}

func TestNewServices_ReportRun(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	seed(t, rootDir, map[string]string{
		"datasets/logs.csv": recordstest.Log(
			recordstest.Row(since, deviceID, apID, 500, "upload"),
			recordstest.Row(since+60, deviceID, "001122:AA:BB:CC", 20, "download"),
		),
		"datasets/aps.csv": recordstest.AccessPoints(
			recordstest.AccessPointRow(apID, "11A"),
			recordstest.AccessPointRow("001122:AA:BB:CC", "07B"),
		),
	})

	ctx := context.Background()
	services, err := NewServices(ctx, testConfig(rootDir))
	require.NoError(t, err)
	defer services.Close()

	result, err := services.ReportService.Run(ctx, reports.ReportRequest{
		AccessPointID: apID,
		Since:         "1607173201",
		DeviceID:      deviceID,
	})
	require.NoError(t, err)

	require.Len(t, result.TopVendors, 1)
	assert.Equal(t, "Samsung Electronics Co.,Ltd", result.TopVendors[0].Vendor)
	assert.Equal(t, []string{"2020-12-05"}, result.Dates)
	assert.Equal(t, []string{deviceID}, result.UniqueClients)
	assert.Equal(t, []string{"2020-Dec-05 13:00:01", "2020-Dec-05 13:01:01"}, result.BuildingChanges)
	assert.Len(t, result.Artifacts, 6)

	rc, _, err := services.ReportService.OpenArtifact(ctx, result.RunID, reports.ArtifactUniqueClients)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.JSONEq(t, `["`+deviceID+`"]`, string(body))
}

func TestNewServices_RegistryKey(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	seed(t, rootDir, map[string]string{
		"datasets/oui.txt": "OUI/MA-L                                                    Organization\n" +
			"4C3C16     (base 16)\t\tSome Other Vendor\n",
		"datasets/logs.csv": recordstest.Log(recordstest.Row(since, deviceID, apID, 1, "u")),
	})

	cfg := testConfig(rootDir)
	cfg.Vendors.RegistryKey = "datasets/oui.txt"

	ctx := context.Background()
	services, err := NewServices(ctx, cfg)
	require.NoError(t, err)
	defer services.Close()

	ranking, err := services.QueryService.TopVendors(ctx, "")
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "Some Other Vendor", ranking[0].Vendor)
}

func TestNewServices_MissingRegistry(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir())
	cfg.Vendors.RegistryKey = "datasets/missing.txt"

	_, err := NewServices(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, filestorages.ErrFileNotFound)
}

func TestApp_NewAndShutdown(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir())
	cfg.Server = configs.ServerConfig{Port: 0, ShutdownTimeout: 2}

	application, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, application.ShutdownTimeout())

	// Shutdown without Start still releases storage and cancels request contexts.
	require.NoError(t, application.Shutdown(context.Background()))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := NewLogger(configs.LogConfig{Level: "chatty"}, io.Discard)
	assert.ErrorContains(t, err, "failed to initialize logger")
}
