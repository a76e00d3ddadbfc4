package streams

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](0, -1)
	assert.Equal(t, defaultNumPartitions, queue.PartitionCount())
	assert.Equal(t, defaultBuffer, cap(queue.partitions[0]))

	queue = NewPartitionedQueue[int](3, 0)
	assert.Equal(t, 3, queue.PartitionCount())
	assert.Equal(t, 0, cap(queue.partitions[0]))
}

func TestPartitionedQueue_PublishRoutesModulo(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[string](2, 4)
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, 0, "a"))
	require.NoError(t, queue.Publish(ctx, 1, "b"))
	require.NoError(t, queue.Publish(ctx, 2, "c"))
	queue.Close()

	var p0, p1 []string
	for msg := range queue.Partition(0) {
		p0 = append(p0, msg)
	}
	for msg := range queue.Partition(1) {
		p1 = append(p1, msg)
	}
	assert.Equal(t, []string{"a", "c"}, p0)
	assert.Equal(t, []string{"b"}, p1)
}

func TestPartitionedQueue_PublishHonoursContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := queue.Publish(ctx, 0, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
