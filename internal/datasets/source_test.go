package datasets

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"wifi-analytics/internal/shared/filestorages"
	"wifi-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSource_OpenLogAndAccessPoints(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage, err := filestorages.NewBucketStorage(ctx, "mem://")
	require.NoError(t, err)
	defer storage.Close()

	_, err = storage.Put(ctx, "datasets/logs.csv.zst", strings.NewReader(string(zstdBytes(t, plainLog))), filestorages.PutOptions{})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "datasets/aps.csv", strings.NewReader("ap_id building\n"), filestorages.PutOptions{})
	require.NoError(t, err)

	src := NewSource(storage, "datasets/logs.csv.zst", "datasets/aps.csv")
	assert.Equal(t, "datasets/logs.csv.zst", src.LogKey())

	rc, err := src.OpenLog(ctx)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, plainLog, string(content))

	rc, err = src.OpenAccessPoints(ctx)
	require.NoError(t, err)
	content, err = io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "ap_id building\n", string(content))
}

func TestSource_OpenLog_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockFileStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), "datasets/logs.csv").Return(nil, filestorages.ErrFileNotFound)

	_, err := NewSource(storage, "datasets/logs.csv", "datasets/aps.csv").OpenLog(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, filestorages.ErrFileNotFound))
	assert.Contains(t, err.Error(), "datasets/logs.csv")
}
