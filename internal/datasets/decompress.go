package datasets

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies how a dataset object is encoded.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionGzip Compression = "gzip"
)

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	gzipMagic = []byte{0x1F, 0x8B}
)

// Detect sniffs the compression of br without consuming it.
func Detect(br *bufio.Reader) (Compression, error) {
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return "", err
	}
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd, nil
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip, nil
	default:
		return CompressionNone, nil
	}
}

// Decompress wraps rc so that reads return plain text whatever the object's compression.
// Closing the result closes rc.
func Decompress(rc io.ReadCloser) (io.ReadCloser, Compression, error) {
	br := bufio.NewReaderSize(rc, 64*1024)
	compression, err := Detect(br)
	if err != nil {
		_ = rc.Close()
		return nil, "", fmt.Errorf("sniff compression: %w", err)
	}

	switch compression {
	case CompressionZstd:
		dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			_ = rc.Close()
			return nil, "", fmt.Errorf("create zstd decoder: %w", err)
		}
		return &stackedReadCloser{Reader: dec, closers: []io.Closer{dec.IOReadCloser(), rc}}, compression, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, "", fmt.Errorf("create gzip reader: %w", err)
		}
		return &stackedReadCloser{Reader: gz, closers: []io.Closer{gz, rc}}, compression, nil
	default:
		return &stackedReadCloser{Reader: br, closers: []io.Closer{rc}}, compression, nil
	}
}

// stackedReadCloser closes every layer, innermost decoder first.
type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
