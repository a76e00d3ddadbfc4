package scanners

import (
	"context"
	"io"

	"wifi-analytics/internal/aggregators"
	"wifi-analytics/internal/events"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records"
	"wifi-analytics/internal/streams"

	"golang.org/x/sync/errgroup"
)

// ParallelOptions sizes the parallel byte-totals fold.
type ParallelOptions struct {
	// Workers is the number of partial cubes folded concurrently. Defaults to 1.
	Workers int
	// ChunkBytes is the read size of the producer. Defaults to streams.DefaultChunkBytes.
	ChunkBytes int
	// QueueBuffer is the number of chunks that may wait per worker. Defaults to 2.
	QueueBuffer int
}

func (o ParallelOptions) withDefaults() ParallelOptions {
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.ChunkBytes <= 0 {
		o.ChunkBytes = streams.DefaultChunkBytes
	}
	if o.QueueBuffer <= 0 {
		o.QueueBuffer = 2
	}
	return o
}

// ByteTotalsSequential sums byte counts per UTC date, access point and direction in one pass.
func ByteTotalsSequential(ctx context.Context, r io.Reader) (models.ByteCube, error) {
	cube := models.NewByteCube()
	folder := aggregators.NewCubeFolder()

	s := records.NewScanner(r)
	for s.Scan() {
		if err := checkCtx(ctx, s); err != nil {
			return nil, err
		}
		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		if err := folder.Fold(cube, rec); err != nil {
			return nil, s.Wrap(err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return cube, nil
}

// ByteTotals computes the same cube as ByteTotalsSequential as a map-reduce: one producer splits
// the log into chunks of whole rows, one consumer per worker folds its chunks into a partial cube,
// and the partials are deep-added once every consumer is done. The first failure cancels the
// rest.
func ByteTotals(ctx context.Context, r io.Reader, opts ParallelOptions) (models.ByteCube, error) {
	opts = opts.withDefaults()

	queue := streams.NewPartitionedQueue[events.LineChunkEvent](opts.Workers, opts.QueueBuffer)
	producer := streams.NewLineChunkProducer(queue, opts.ChunkBytes)
	consumer := streams.NewCubeConsumer(queue)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return producer.Produce(gctx, r)
	})
	partials := make([]models.ByteCube, queue.PartitionCount())
	for i := range partials {
		g.Go(func() error {
			cube, err := consumer.Consume(gctx, i)
			partials[i] = cube
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rolluper := aggregators.NewCubeRolluper()
	total := models.NewByteCube()
	for _, partial := range partials {
		if err := rolluper.Rollup(total, partial); err != nil {
			return nil, err
		}
	}
	return total, nil
}
