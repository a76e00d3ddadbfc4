package streams

import (
	"context"
	"errors"
	"testing"

	"wifi-analytics/internal/aggregators"
	"wifi-analytics/internal/aggregators/mocks"
	"wifi-analytics/internal/events"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records"
	"wifi-analytics/internal/records/recordstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func chunk(seq, firstLine int, rows ...string) events.LineChunkEvent {
	data := ""
	for _, row := range rows {
		data += row + "\n"
	}
	return events.LineChunkEvent{Seq: seq, FirstLine: firstLine, Data: []byte(data)}
}

func TestCubeConsumer_Consume(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.LineChunkEvent](2, 4)
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, 0, chunk(0, 2,
		recordstest.Row(1607173201, "AABBCC:11:22:33", "001122:AA:BB:CC", 500, "upload"),
	)))
	require.NoError(t, queue.Publish(ctx, 1, chunk(1, 3,
		recordstest.Row(1607173202, "AABBCC:11:22:33", "001122:AA:BB:CC", 7, "download"),
	)))
	require.NoError(t, queue.Publish(ctx, 0, chunk(2, 4,
		recordstest.Row(1607173203, "DDEEFF:11:22:33", "001122:AA:BB:CC", 100, "upload"),
	)))
	queue.Close()

	consumer := NewCubeConsumer(queue)

	cube0, err := consumer.Consume(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, models.ByteCube{
		"2020-12-05": {"001122:AA:BB:CC": {models.DirectionReceived: 600}},
	}, cube0)

	cube1, err := consumer.Consume(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ByteCube{
		"2020-12-05": {"001122:AA:BB:CC": {models.DirectionSent: 7}},
	}, cube1)
}

func TestCubeConsumer_Consume_ErrorCarriesLine(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.LineChunkEvent](1, 4)
	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, 0, chunk(0, 10,
		recordstest.Row(1607173201, "AABBCC:11:22:33", "001122:AA:BB:CC", 500, "upload"),
		"short",
	)))
	queue.Close()

	_, err := NewCubeConsumer(queue).Consume(ctx, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, records.ErrShortLine)

	var lineErr *records.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 11, lineErr.Line)
}

func TestCubeConsumer_Consume_Cancelled(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.LineChunkEvent](1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCubeConsumer(queue).Consume(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCubeConsumer_Consume_RecoversPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	folder := mocks.NewMockCubeFolder(ctrl)
	folder.EXPECT().Fold(gomock.Any(), gomock.Any()).DoAndReturn(func(models.ByteCube, records.Record) error {
		panic("boom")
	})

	queue := NewPartitionedQueue[events.LineChunkEvent](1, 4)
	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, 0, chunk(0, 2,
		recordstest.Row(1607173201, "AABBCC:11:22:33", "001122:AA:BB:CC", 500, "upload"),
	)))
	queue.Close()

	consumer := &cubeConsumer{
		queue:     queue,
		newFolder: func() aggregators.CubeFolder { return folder },
	}

	cube, err := consumer.Consume(ctx, 0)
	assert.Nil(t, cube)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SYS_9000")
}
