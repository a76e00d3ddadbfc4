package filestorages

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBucketStorage(t *testing.T) FileStorage {
	storage, err := NewBucketStorage(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

func TestNewBucketStorage_UnknownScheme(t *testing.T) {
	t.Parallel()

	_, err := NewBucketStorage(context.Background(), "nope://bucket")
	assert.Error(t, err)
}

func TestBucketStorage_FileURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "datasets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "datasets", "aps_espol.csv"), []byte("ap_id building\n"), 0o644))

	storage, err := NewBucketStorage(context.Background(), "file://"+filepath.ToSlash(dir))
	require.NoError(t, err)
	defer storage.Close()

	assert.Equal(t, "ap_id building\n", readKey(t, storage, "datasets/aps_espol.csv"))
}

func TestBucketStorage_Put_FailedCopyLeavesNoObject(t *testing.T) {
	t.Parallel()

	storage := newTestBucketStorage(t)
	key := "reports/run/byte_totals.parquet"

	_, err := storage.Put(context.Background(), key, iotest.ErrReader(errors.New("encoder failed")), PutOptions{})
	require.Error(t, err)

	_, err = storage.Get(context.Background(), key)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestValidateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: "reports/run/top_vendors.json"},
		{key: "logs.csv"},
		{key: "reports//run", wantErr: true},
		{key: "reports/./run", wantErr: true},
		{key: "reports/run/", wantErr: true},
		{key: `reports\run`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.key, "/", "_"), func(t *testing.T) {
			t.Parallel()
			err := validateKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
