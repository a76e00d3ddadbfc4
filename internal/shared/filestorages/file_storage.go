package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidKey        = errors.New("invalid file key")
	ErrInvalidRootDir    = errors.New("invalid root directory")
)

type PutResult struct {
	FileKey string
}

type PutOptions struct {
	AllowOverwrite bool
}

// FileStorage holds datasets and report artifacts under slash separated keys such as
// "datasets/logs-conexion.csv" or "reports/<runID>/top_vendors.json".
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Close() error
}

// fileStorage keeps every key as a file below dir. Writes are staged in a temp file next to the
// target and published in one step, so readers never see a partial artifact.
type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}
	if info, err := os.Stat(absRootDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRootDir, absRootDir)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	finalPath := s.path(key)

	tmpPath, err := s.stage(ctx, filepath.Dir(finalPath), r)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", key, err)
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if opts.AllowOverwrite {
		// rename replaces atomically on POSIX
		err = os.Rename(tmpPath, finalPath)
	} else {
		// link fails when the target exists, which makes publish-if-absent atomic
		err = os.Link(tmpPath, finalPath)
		if errors.Is(err, os.ErrExist) {
			return nil, ErrFileAlreadyExists
		}
	}
	if err != nil {
		return nil, fmt.Errorf("publish %s: %w", key, err)
	}

	return &PutResult{FileKey: key}, nil
}

func (s *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return nil, err
	}
	return file, nil
}

func (s *fileStorage) Close() error {
	return nil
}

func (s *fileStorage) path(key string) string {
	return filepath.Join(s.dir, filepath.FromSlash(key))
}

// stage copies r into a synced temp file inside dir and returns its path.
func (s *fileStorage) stage(ctx context.Context, dir string, r io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	_, err = io.Copy(tmp, ctxReader{ctx: ctx, r: r})
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// validateKey rejects keys that are empty, absolute, non canonical or that escape the storage
// root. Keys always use forward slashes, whatever the backend.
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return ErrInvalidKey
	}
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return ErrInvalidKey
	}
	if clean != key {
		return fmt.Errorf("%w: %q is not canonical", ErrInvalidKey, key)
	}
	return nil
}
