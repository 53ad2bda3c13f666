package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// OutboxEvent is a leave_events row as seen by the relay.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	EventType     string
	Source        string
	SchemaVersion int
	Payload       []byte
	OccurredAt    time.Time
	Status        string
	RetryCount    int
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	// ListPending returns failed events due for retry and pending events
	// created before now minus grace.
	ListPending(ctx context.Context, limit int, grace time.Duration) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	db *sql.DB
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

// ListPending binds $3 to the grace cutoff and $4 to the limit. The
// selection and retry backoff SQL relies on Postgres (NOW, LEAST, INTERVAL)
// and is not exercised against SQLite.
func (r *outboxRepository) ListPending(ctx context.Context, limit int, grace time.Duration) ([]OutboxEvent, error) {
	query := `
SELECT
	id,
	aggregate_id,
	event_type,
	source,
	schema_version,
	payload,
	occurred_at,
	status,
	retry_count
FROM leave_events
WHERE (status = $1 AND created_at <= $3)
	OR (status = $2 AND (next_retry_at IS NULL OR next_retry_at <= NOW()))
ORDER BY created_at ASC
LIMIT $4
`

	cutoff := time.Now().UTC().Add(-grace)
	rows, err := r.db.QueryContext(ctx, query, OutboxStatusPending, OutboxStatusFailed, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID,
			&e.AggregateID,
			&e.EventType,
			&e.Source,
			&e.SchemaVersion,
			&e.Payload,
			&e.OccurredAt,
			&e.Status,
			&e.RetryCount,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	query := `
UPDATE leave_events
SET
	status = $2,
	processed_at = NOW(),
	error_message = NULL,
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `
UPDATE leave_events
SET
	status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1 AND status <> 'sent'
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusFailed, reason)
	return err
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.AggregateID == "" {
		return errors.New("outbox aggregate id is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	if event.SchemaVersion < 1 {
		return fmt.Errorf("invalid outbox schema version: %d", event.SchemaVersion)
	}
	switch event.Status {
	case "", OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
