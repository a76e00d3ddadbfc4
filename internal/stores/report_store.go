package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"wifi-analytics/internal/models"
	"wifi-analytics/internal/shared/filestorages"

	"github.com/parquet-go/parquet-go"
)

const DefaultReportPrefix = "reports"

var (
	ErrArtifactAlreadyExists = errors.New("report artifact already exists")
	ErrArtifactNotFound      = errors.New("report artifact not found")
	ErrInvalidArtifactKey    = errors.New("invalid report artifact key")
)

// ReportStore writes the artifacts of one report run under <prefix>/<runID>/. Artifacts are
// written once: a run id is never reused, so an existing key means two runs collided.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// PutJSON marshals v and stores it as name. It returns the artifact key.
	PutJSON(ctx context.Context, runID string, name string, v any) (string, error)
	// PutByteTotals stores the rows of cube as a zstd-compressed parquet file.
	PutByteTotals(ctx context.Context, runID string, name string, cube models.ByteCube) (string, error)
	// PutBlob stores already encoded content, e.g. a chart image.
	PutBlob(ctx context.Context, runID string, name string, data []byte) (string, error)
	// Get opens a stored artifact.
	Get(ctx context.Context, runID string, name string) (io.ReadCloser, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage, prefix string) ReportStore {
	if prefix == "" {
		prefix = DefaultReportPrefix
	}
	return &reportStore{fileStorage: fileStorage, dir: prefix}
}

func (s *reportStore) PutJSON(ctx context.Context, runID string, name string, v any) (string, error) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return s.put(ctx, runID, name, jsonData)
}

func (s *reportStore) PutByteTotals(ctx context.Context, runID string, name string, cube models.ByteCube) (string, error) {
	var buf bytes.Buffer
	writer := parquet.NewGenericWriter[models.ByteCubeRow](&buf, parquet.Compression(&parquet.Zstd))
	if _, err := writer.Write(cube.Rows()); err != nil {
		return "", fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s writer: %w", name, err)
	}
	return s.put(ctx, runID, name, buf.Bytes())
}

func (s *reportStore) PutBlob(ctx context.Context, runID string, name string, data []byte) (string, error) {
	return s.put(ctx, runID, name, data)
}

func (s *reportStore) Get(ctx context.Context, runID string, name string) (io.ReadCloser, error) {
	key, err := s.getKey(runID, name)
	if err != nil {
		return nil, err
	}
	rc, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return rc, nil
}

func (s *reportStore) put(ctx context.Context, runID string, name string, data []byte) (string, error) {
	key, err := s.getKey(runID, name)
	if err != nil {
		return "", err
	}
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrArtifactAlreadyExists
		}
		return "", fmt.Errorf("failed to put %s: %w", name, err)
	}
	return key, nil
}

// getKey rejects segments that would resolve outside the run directory.
func (s *reportStore) getKey(runID string, name string) (string, error) {
	for _, segment := range []string{runID, name} {
		if segment == "" || segment == "." || segment == ".." || strings.ContainsAny(segment, "/\\") {
			return "", fmt.Errorf("%w: %q", ErrInvalidArtifactKey, segment)
		}
	}
	return path.Join(s.dir, runID, name), nil
}
