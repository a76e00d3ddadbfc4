package streams

import "context"

// PartitionedQueue is a fixed set of buffered channels. Each partition is meant to be drained by
// exactly one consumer goroutine.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 8
	defaultBuffer        = 4
)

// NewPartitionedQueue creates numPartitions channels of the given buffer size. Non-positive
// arguments fall back to the defaults.
func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	if buffer < 0 {
		buffer = defaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Partition returns the receive side of one partition. It is closed by Close.
func (queue *PartitionedQueue[T]) Partition(i int) <-chan T {
	return queue.partitions[i]
}

// Publish sends msg to partition i modulo the partition count, blocking until there is room or ctx
// is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partition int, msg T) error {
	ch := queue.partitions[partition%len(queue.partitions)]
	select {
	case <-ctx.Done():
		return ctx.Err()
	case ch <- msg:
		return nil
	}
}

// Close closes every partition. Publishing afterwards panics.
func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}
