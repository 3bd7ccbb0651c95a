package streams

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](4, 8)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, queue.Publish(ctx, "ses-1", i))
	}

	ch := queue.partitions[partitionIndex("ses-1", 4)]
	require.Len(t, ch, 3)
	assert.Equal(t, 0, <-ch)
	assert.Equal(t, 1, <-ch)
	assert.Equal(t, 2, <-ch)
}

func TestPartitionedQueue_PublishHonoursContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := queue.Publish(ctx, "k", 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPartitionedQueue_DefaultsAndBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultNumPartitions, NewPartitionedQueue[int]().PartitionCount())
	assert.Equal(t, 1, NewPartitionedQueueWithSize[int](0, 1).PartitionCount())

	for _, key := range []string{"", "a", "01JDQ7ZP8W6X3Y0T4M2N5K9ABC"} {
		idx := partitionIndex(key, 4)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
		assert.Equal(t, idx, partitionIndex(key, 4))
	}
}
