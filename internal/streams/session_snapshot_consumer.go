package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"device-telemetry/internal/events"
	"device-telemetry/internal/exporters"
	"device-telemetry/internal/shared/loggers"
	"device-telemetry/internal/shared/metrics"
	"device-telemetry/internal/shared/svcerrors"
	"device-telemetry/internal/shared/ulid"
)

//go:generate mockgen -source=session_snapshot_consumer.go -destination=./mocks/session_snapshot_consumer_mock.go -package=mocks
type SessionSnapshotConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type sessionSnapshotConsumer struct {
	queue         *PartitionedQueue[events.SessionSnapshotEvent]
	exportService exporters.SnapshotExportService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSessionSnapshotConsumer(queue *PartitionedQueue[events.SessionSnapshotEvent], exportService exporters.SnapshotExportService, logger loggers.Logger) SessionSnapshotConsumer {
	return &sessionSnapshotConsumer{
		queue:         queue,
		exportService: exportService,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns one worker goroutine per partition.
func (consumer *sessionSnapshotConsumer) Start(ctx context.Context) {
	for partitionIndex, ch := range consumer.queue.partitions {
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop signals the workers, lets them export what is already buffered, and waits for them.
// Call it after producers have stopped and before cancelling the Start context.
func (consumer *sessionSnapshotConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *sessionSnapshotConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.SessionSnapshotEvent) {
	partitionLogger := consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.drain(ctx, partitionLogger, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionLogger, &event)
		}
	}
}

// drain exports whatever is still buffered in the partition without waiting for more.
func (consumer *sessionSnapshotConsumer) drain(ctx context.Context, logger loggers.Logger, ch <-chan events.SessionSnapshotEvent) {
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, logger, &event)
		default:
			return
		}
	}
}

func (consumer *sessionSnapshotConsumer) handle(ctx context.Context, logger loggers.Logger, event *events.SessionSnapshotEvent) {
	ctx = logger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldSessionID, event.SessionID).
		Logger().WithContext(ctx)

	// A panicking export must not take the partition worker down with it.
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			panicErr, ok := r.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricSessionSnapshotConsumedTotal.WithLabelValues(streamSessionSnapshot, svcErr.Code).Inc()
		}
	}()

	if svcErr := consumer.exportService.Export(ctx, event); svcErr != nil {
		metricSessionSnapshotConsumedTotal.WithLabelValues(streamSessionSnapshot, svcErr.Code).Inc()
		return
	}
	metricSessionSnapshotConsumedTotal.WithLabelValues(streamSessionSnapshot, metrics.ValueNoError).Inc()
}
