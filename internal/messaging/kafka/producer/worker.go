package producer

import (
	"context"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/events"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka"

	"go.uber.org/zap"
)

type WorkerOptions struct {
	Topic        string
	PollInterval time.Duration
	BatchSize    int
	// Grace keeps the relay away from pending events the request path may
	// still be publishing.
	Grace time.Duration
}

func (o WorkerOptions) withDefaults() WorkerOptions {
	if o.Topic == "" {
		o.Topic = events.LeaveLifecycleTopic
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 50
	}
	if o.Grace < 0 {
		o.Grace = 0
	}
	return o
}

func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	opts WorkerOptions,
) {
	opts = opts.withDefaults()

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started",
		zap.Duration("poll_interval", opts.PollInterval),
		zap.Int("batch_size", opts.BatchSize),
		zap.Duration("grace", opts.Grace),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := RelayPending(ctx, repo, writer, log, opts); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// RelayPending publishes one batch of undelivered events and returns how many
// were sent.
func RelayPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	opts WorkerOptions,
) (int, error) {
	opts = opts.withDefaults()

	pending, err := repo.ListPending(ctx, opts.BatchSize, opts.Grace)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		return 0, nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(pending)))

	sent := 0
	for _, event := range pending {
		if err := publishEvent(ctx, writer, opts.Topic, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		sent++
		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("leave_id", event.AggregateID),
		)
	}

	return sent, nil
}
