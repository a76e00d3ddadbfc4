package streams

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"wifi-analytics/internal/events"
	"wifi-analytics/internal/records"
)

// LineChunkProducer splits an access log into chunks of whole rows and publishes them round-robin
// onto a partitioned queue, so each partition's consumer gets an equal share of the file.
//
// The header line is dropped before the first chunk. A chunk is cut at the last newline inside the
// read buffer and the remainder is carried into the next chunk, so no row is ever split across
// two consumers. Rows are independent of each other, which is what makes any assignment of chunks
// to partitions correct.
//
// The queue is closed when Produce returns, whether it succeeded or not.
//
//go:generate mockgen -source=line_chunk_producer.go -destination=./mocks/line_chunk_producer_mock.go -package=mocks
type LineChunkProducer interface {
	Produce(ctx context.Context, r io.Reader) error
}

const (
	DefaultChunkBytes = 1 << 20
	minChunkBytes     = records.MinLineLen + 1
)

var ErrLineTooLong = records.ErrLineTooLong

type lineChunkProducer struct {
	queue      *PartitionedQueue[events.LineChunkEvent]
	chunkBytes int
}

func NewLineChunkProducer(queue *PartitionedQueue[events.LineChunkEvent], chunkBytes int) LineChunkProducer {
	if chunkBytes <= 0 {
		chunkBytes = DefaultChunkBytes
	}
	if chunkBytes < minChunkBytes {
		chunkBytes = minChunkBytes
	}
	return &lineChunkProducer{
		queue:      queue,
		chunkBytes: chunkBytes,
	}
}

func (producer *lineChunkProducer) Produce(ctx context.Context, r io.Reader) error {
	defer producer.queue.Close()

	br := bufio.NewReader(r)
	done, err := skipLine(br)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if done {
		return nil
	}

	seq := 0
	nextLine := 2
	var carry []byte
	for {
		buf := make([]byte, len(carry)+producer.chunkBytes)
		copy(buf, carry)
		n, err := io.ReadFull(br, buf[len(carry):])
		buf = buf[:len(carry)+n]
		eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !eof {
			return fmt.Errorf("read line %d: %w", nextLine, err)
		}

		var data []byte
		if eof {
			data, carry = buf, nil
		} else {
			cut := bytes.LastIndexByte(buf, '\n')
			if cut < 0 {
				if len(buf) > records.MaxLineLen {
					return &records.LineError{Line: nextLine, Err: ErrLineTooLong}
				}
				carry = buf
				continue
			}
			// carry aliases the tail of buf; consumers only read data, which ends before it.
			data, carry = buf[:cut+1], buf[cut+1:]
		}

		if len(data) > 0 {
			event := events.LineChunkEvent{Seq: seq, FirstLine: nextLine, Data: data}
			if err := producer.queue.Publish(ctx, seq, event); err != nil {
				return err
			}
			metricLineChunkPublishedTotal.WithLabelValues(streamLineChunk).Inc()
			metricLineChunkBytesPublishedTotal.WithLabelValues(streamLineChunk).Add(float64(len(data)))
			nextLine += bytes.Count(data, []byte{'\n'})
			seq++
		}
		if eof {
			return nil
		}
	}
}

// skipLine consumes one line. done reports that the input ended with it.
func skipLine(br *bufio.Reader) (done bool, err error) {
	n := 0
	for {
		part, err := br.ReadSlice('\n')
		n += len(part)
		switch {
		case err == nil:
			return false, checkHeaderLen(n - len(part) + len(trimTerminator(part)))
		case errors.Is(err, bufio.ErrBufferFull):
			if n > records.MaxLineLen+1 {
				return false, &records.LineError{Line: 1, Err: ErrLineTooLong}
			}
			continue
		case errors.Is(err, io.EOF):
			return true, checkHeaderLen(n - len(part) + len(trimTerminator(part)))
		default:
			return false, err
		}
	}
}

func trimTerminator(b []byte) []byte {
	return bytes.TrimSuffix(bytes.TrimSuffix(b, []byte{'\n'}), []byte{'\r'})
}

func checkHeaderLen(n int) error {
	if n > records.MaxLineLen {
		return &records.LineError{Line: 1, Err: ErrLineTooLong}
	}
	return nil
}
