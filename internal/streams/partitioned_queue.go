package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
)

// PartitionedQueue is an in-process stand-in for a partitioned log such as a Kafka topic.
// Messages with the same partition key land on the same channel, so a single worker per
// partition sees them in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 4
	defaultBuffer        = 256
)

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return NewPartitionedQueueWithSize[T](defaultNumPartitions, defaultBuffer)
}

func NewPartitionedQueueWithSize[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = 1
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks while the target partition is full and gives up when ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	ch := queue.partitions[partitionIndex(partitionKey, len(queue.partitions))]
	select {
	case <-ctx.Done():
		return ctx.Err()
	case ch <- msg:
		return nil
	}
}

// Close closes every partition. Publishing after Close panics.
func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	v := binary.LittleEndian.Uint32(hash.Sum(nil))
	return int(v % uint32(n))
}
