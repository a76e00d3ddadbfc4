package filestorages

import (
	"context"
	"fmt"
	"io"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// driver
	_ "gocloud.dev/blob/memblob"  // mem:// driver
	_ "gocloud.dev/blob/s3blob"   // s3:// driver
	"gocloud.dev/gcerrors"
)

type bucketStorage struct {
	bucket *blob.Bucket
}

// NewBucketStorage opens a gocloud.dev bucket URL, e.g. "s3://datasets?region=us-east-1",
// "gs://datasets" or "file:///var/lib/wifi-analytics".
func NewBucketStorage(ctx context.Context, bucketURL string) (FileStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", bucketURL, err)
	}
	return &bucketStorage{bucket: bucket}, nil
}

func (s *bucketStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	// Not atomic across writers: buckets have no create-if-absent primitive common to every driver.
	if !opts.AllowOverwrite {
		exists, err := s.bucket.Exists(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", key, err)
		}
		if exists {
			return nil, ErrFileAlreadyExists
		}
	}

	// Cancelling the writer's context before Close discards the partial object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("create writer for %s: %w", key, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close writer for %s: %w", key, err)
	}

	return &PutResult{FileKey: key}, nil
}

func (s *bucketStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	rc, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return rc, nil
}

func (s *bucketStorage) Close() error {
	return s.bucket.Close()
}
