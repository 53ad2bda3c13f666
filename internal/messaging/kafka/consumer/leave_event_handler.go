package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/bootstrap"
	"github.com/nearzk/ddd-leave-sample/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const processedKeyPrefix = "leave-events:processed:"

var ErrRedisUnavailable = errors.New("dedupe store unavailable")

// LeaveEventHandler turns leave lifecycle messages into audit entries.
// Deliveries are at least once, so every event id is recorded in Redis and
// repeats are skipped.
type LeaveEventHandler struct {
	rdb    *redis.Client
	audit  bootstrap.AuditLogger
	ttl    time.Duration
	logger *zap.Logger
}

func NewLeaveEventHandler(rdb *redis.Client, audit bootstrap.AuditLogger, ttl time.Duration, logger ...*zap.Logger) *LeaveEventHandler {
	l := zap.L().Named("kafka.consumer.leave_events")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &LeaveEventHandler{rdb: rdb, audit: audit, ttl: ttl, logger: l}
}

// Handle returns an error only when the message should be fetched again.
// Malformed, unsupported and duplicate messages are acknowledged.
func (h *LeaveEventHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	var event events.LeaveEventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("decode leave event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	if event.SchemaVersion != events.LeaveSchemaVersion {
		h.logger.Warn("unsupported leave event schema, skipping",
			zap.String("event_id", event.EventID),
			zap.Int("schema_version", event.SchemaVersion),
		)
		return nil
	}

	if event.EventID == "" {
		h.logger.Warn("leave event without id, skipping", zap.String("leave_id", event.LeaveID))
		return nil
	}

	key := processedKeyPrefix + event.EventID
	fresh, err := h.rdb.SetNX(ctx, key, event.EventType, h.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if !fresh {
		h.logger.Info("leave event already processed, skipping",
			zap.String("event_id", event.EventID),
			zap.String("leave_id", event.LeaveID),
		)
		return nil
	}

	var snapshot struct {
		Status         string  `json:"status"`
		ApplicantID    string  `json:"applicant_id"`
		ApproverID     *string `json:"approver_id"`
		LeaderMaxLevel int     `json:"leader_max_level"`
	}
	if err := json.Unmarshal(event.Payload, &snapshot); err != nil {
		h.logger.Error("decode leave snapshot failed",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return nil
	}

	meta := map[string]any{
		"event_id":     event.EventID,
		"leave_id":     event.LeaveID,
		"source":       event.Source,
		"status":       snapshot.Status,
		"applicant_id": snapshot.ApplicantID,
		"occurred_at":  event.OccurredAt.UTC().Format(time.RFC3339),
	}
	if snapshot.ApproverID != nil {
		meta["approver_id"] = *snapshot.ApproverID
	}

	h.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LEAVE_" + event.EventType,
		Message: fmt.Sprintf("leave %s %s", event.LeaveID, snapshot.Status),
		Meta:    meta,
	})

	return nil
}
