package producer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/events"
	"github.com/nearzk/ddd-leave-sample/internal/leave"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka"
	kafkamock "github.com/nearzk/ddd-leave-sample/internal/messaging/kafka/mock"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	failKeys map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, msg := range msgs {
		if err, ok := w.failKeys[string(msg.Key)]; ok {
			return err
		}
		w.messages = append(w.messages, msg)
	}
	return nil
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

var occurred = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestLeaveEventPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	pub := producer.NewLeaveEventPublisher(writer, "")

	err := pub.Publish(context.Background(), leave.LeaveEvent{
		ID:         "e1",
		Type:       leave.EventTypeCreate,
		LeaveID:    "l1",
		Source:     "leave-service",
		OccurredAt: occurred,
		Payload: leave.LeaveSnapshot{
			SchemaVersion: leave.SnapshotSchemaVersion,
			LeaveID:       "l1",
			Status:        "APPROVING",
		},
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, events.LeaveLifecycleTopic, msg.Topic)
	assert.Equal(t, "l1", string(msg.Key))
	assert.Equal(t, "CREATE", header(msg, events.HeaderEventType))
	assert.Equal(t, "1", header(msg, events.HeaderSchemaVersion))

	var envelope events.LeaveEventMessage
	require.NoError(t, json.Unmarshal(msg.Value, &envelope))
	assert.Equal(t, "e1", envelope.EventID)
	assert.Equal(t, "l1", envelope.LeaveID)
	assert.Equal(t, occurred, envelope.OccurredAt)

	var snapshot leave.LeaveSnapshot
	require.NoError(t, json.Unmarshal(envelope.Payload, &snapshot))
	assert.Equal(t, "APPROVING", snapshot.Status)
}

func TestLeaveEventPublisher_RejectsInvalidEvent(t *testing.T) {
	writer := &fakeWriter{}
	pub := producer.NewLeaveEventPublisher(writer, "custom.topic")

	err := pub.Publish(context.Background(), leave.LeaveEvent{ID: "e1", Type: leave.EventTypeCreate})

	assert.Error(t, err)
	assert.Empty(t, writer.messages)
}

func outboxEvent(id, leaveID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		AggregateID:   leaveID,
		EventType:     "AGREE",
		Source:        "leave-service",
		SchemaVersion: 1,
		Payload:       []byte(`{"schema_version":1}`),
		OccurredAt:    occurred,
		Status:        kafka.OutboxStatusPending,
	}
}

func TestRelayPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failKeys: map[string]error{"l2": errors.New("broker down")}}
	opts := producer.WorkerOptions{Topic: "leave.test", BatchSize: 10, Grace: 5 * time.Second}

	repo.EXPECT().ListPending(gomock.Any(), 10, 5*time.Second).
		Return([]kafka.OutboxEvent{outboxEvent("e1", "l1"), outboxEvent("e2", "l2")}, nil)
	repo.EXPECT().MarkSent(gomock.Any(), "e1").Return(nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "e2", "broker down").Return(nil)

	sent, err := producer.RelayPending(context.Background(), repo, writer, zap.NewNop(), opts)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "leave.test", writer.messages[0].Topic)
}

func TestRelayPending_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ListPending(gomock.Any(), 50, time.Duration(0)).Return(nil, errors.New("db down"))

	sent, err := producer.RelayPending(context.Background(), repo, &fakeWriter{}, zap.NewNop(), producer.WorkerOptions{})

	assert.Error(t, err)
	assert.Zero(t, sent)
}
