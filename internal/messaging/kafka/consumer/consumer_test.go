package consumer_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/bootstrap"
	"github.com/nearzk/ddd-leave-sample/internal/events"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka/consumer"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
}

func (a *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *recordingAudit) all() []bootstrap.AuditLog {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]bootstrap.AuditLog(nil), a.entries...)
}

func setupHandler(t *testing.T) (*consumer.LeaveEventHandler, *recordingAudit, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	audit := &recordingAudit{}
	return consumer.NewLeaveEventHandler(rdb, audit, time.Hour, zap.NewNop()), audit, mr
}

func leaveMessage(t *testing.T, eventID, eventType string, schemaVersion int) kafkago.Message {
	t.Helper()
	value, err := json.Marshal(events.LeaveEventMessage{
		EventID:       eventID,
		EventType:     eventType,
		LeaveID:       "l1",
		Source:        "leave-service",
		SchemaVersion: schemaVersion,
		OccurredAt:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Payload:       json.RawMessage(`{"schema_version":1,"status":"APPROVING","applicant_id":"p1","approver_id":"a1"}`),
	})
	require.NoError(t, err)
	return kafkago.Message{Key: []byte("l1"), Value: value}
}

func TestLeaveEventHandler_Handle(t *testing.T) {
	handler, audit, mr := setupHandler(t)
	ctx := context.Background()

	require.NoError(t, handler.Handle(ctx, leaveMessage(t, "e1", "CREATE", 1)))

	entries := audit.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "LEAVE_CREATE", entries[0].Action)
	assert.Equal(t, "a1", entries[0].Meta["approver_id"])
	assert.Equal(t, "APPROVING", entries[0].Meta["status"])
	assert.True(t, mr.Exists("leave-events:processed:e1"))

	t.Run("duplicate delivery is skipped", func(t *testing.T) {
		require.NoError(t, handler.Handle(ctx, leaveMessage(t, "e1", "CREATE", 1)))
		assert.Len(t, audit.all(), 1)
	})

	t.Run("unknown schema version is skipped", func(t *testing.T) {
		require.NoError(t, handler.Handle(ctx, leaveMessage(t, "e2", "AGREE", 2)))
		assert.Len(t, audit.all(), 1)
		assert.False(t, mr.Exists("leave-events:processed:e2"))
	})

	t.Run("malformed message is skipped", func(t *testing.T) {
		require.NoError(t, handler.Handle(ctx, kafkago.Message{Value: []byte("{")}))
		assert.Len(t, audit.all(), 1)
	})
}

func TestLeaveEventHandler_RedisDown(t *testing.T) {
	handler, audit, mr := setupHandler(t)
	mr.Close()

	err := handler.Handle(context.Background(), leaveMessage(t, "e1", "CREATE", 1))

	assert.ErrorIs(t, err, consumer.ErrRedisUnavailable)
	assert.Empty(t, audit.all())
}

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []kafkago.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) commits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

func TestConsumeLeaveEvents(t *testing.T) {
	handler, audit, _ := setupHandler(t)
	reader := &fakeReader{queue: []kafkago.Message{
		leaveMessage(t, "e1", "CREATE", 1),
		leaveMessage(t, "e1", "CREATE", 1),
		leaveMessage(t, "e2", "APPROVED", 1),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumer.ConsumeLeaveEvents(ctx, reader, handler, zap.NewNop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return reader.commits() == 3 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	entries := audit.all()
	require.Len(t, entries, 2)
	assert.Equal(t, "LEAVE_APPROVED", entries[1].Action)
}
