package datasets

import (
	"context"
	"fmt"
	"io"

	"wifi-analytics/internal/shared/filestorages"
	"wifi-analytics/internal/shared/loggers"
)

// Source opens the two inputs of every query: the access log and the access-point registry.
// Each Open call returns a fresh reader positioned at the start of the file, so every query makes
// its own pass.
//
//go:generate mockgen -source=source.go -destination=./mocks/source_mock.go -package=mocks
type Source interface {
	OpenLog(ctx context.Context) (io.ReadCloser, error)
	OpenAccessPoints(ctx context.Context) (io.ReadCloser, error)
	LogKey() string
}

type source struct {
	storage         filestorages.FileStorage
	logKey          string
	accessPointsKey string
}

func NewSource(storage filestorages.FileStorage, logKey, accessPointsKey string) Source {
	return &source{
		storage:         storage,
		logKey:          logKey,
		accessPointsKey: accessPointsKey,
	}
}

func (s *source) OpenLog(ctx context.Context) (io.ReadCloser, error) {
	return s.open(ctx, s.logKey)
}

func (s *source) OpenAccessPoints(ctx context.Context) (io.ReadCloser, error) {
	return s.open(ctx, s.accessPointsKey)
}

func (s *source) LogKey() string {
	return s.logKey
}

func (s *source) open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", key, err)
	}
	plain, compression, err := Decompress(rc)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", key, err)
	}
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldDatasetKey, key).
		Str(loggers.FieldCompression, string(compression)).
		Msg("dataset opened")
	return plain, nil
}
