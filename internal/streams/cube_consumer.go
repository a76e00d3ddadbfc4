package streams

import (
	"context"
	"fmt"
	"runtime/debug"

	"wifi-analytics/internal/aggregators"
	"wifi-analytics/internal/events"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records"
	"wifi-analytics/internal/shared/loggers"
	"wifi-analytics/internal/shared/metrics"
	"wifi-analytics/internal/shared/svcerrors"
)

const codeChunkFoldFailed = "STR_2000"

// CubeConsumer folds every chunk of one queue partition into a partial ByteCube. The partial is
// owned by the calling goroutine until it is handed to a CubeRolluper.
//
//go:generate mockgen -source=cube_consumer.go -destination=./mocks/cube_consumer_mock.go -package=mocks
type CubeConsumer interface {
	// Consume drains partition until the producer closes the queue and returns its partial cube.
	Consume(ctx context.Context, partition int) (models.ByteCube, error)
}

type cubeConsumer struct {
	queue     *PartitionedQueue[events.LineChunkEvent]
	newFolder func() aggregators.CubeFolder
}

func NewCubeConsumer(queue *PartitionedQueue[events.LineChunkEvent]) CubeConsumer {
	return &cubeConsumer{
		queue:     queue,
		newFolder: aggregators.NewCubeFolder,
	}
}

func (consumer *cubeConsumer) Consume(ctx context.Context, partition int) (cube models.ByteCube, err error) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partition)).
		Logger()

	// A panicking worker must not take the process down with it.
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("cube consumer panic recovered")
			svcErr := svcerrors.PanicError(r)
			metricLineChunkConsumedTotal.WithLabelValues(streamLineChunk, svcErr.Code).Inc()
			cube, err = nil, svcErr
		}
	}()

	cube = models.NewByteCube()
	folder := consumer.newFolder()
	ch := consumer.queue.Partition(partition)
	for {
		// select picks randomly among ready cases; a cancelled scan must not keep folding.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case event, ok := <-ch:
			if !ok {
				logger.Debug().Int(loggers.FieldResults, len(cube)).Msg("partition drained")
				return cube, nil
			}
			if err := foldChunk(cube, folder, event); err != nil {
				metricLineChunkConsumedTotal.WithLabelValues(streamLineChunk, codeChunkFoldFailed).Inc()
				return nil, err
			}
			metricLineChunkConsumedTotal.WithLabelValues(streamLineChunk, metrics.ValueNoError).Inc()
		}
	}
}

func foldChunk(cube models.ByteCube, folder aggregators.CubeFolder, event events.LineChunkEvent) error {
	return records.ForEachLine(event.Data, event.FirstLine, func(lineNo int, line []byte) error {
		rec, err := records.View(line)
		if err == nil {
			err = folder.Fold(cube, rec)
		}
		if err != nil {
			return &records.LineError{Line: lineNo, Err: err}
		}
		return nil
	})
}
