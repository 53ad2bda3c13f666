package producer

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/nearzk/ddd-leave-sample/internal/events"
	"github.com/nearzk/ddd-leave-sample/internal/leave"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the producers use.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// LeaveEventPublisher publishes leave events right after their transaction
// commits. Events it fails to deliver stay in the outbox for the worker.
type LeaveEventPublisher struct {
	writer MessageWriter
	topic  string
}

var _ leave.EventPublisher = (*LeaveEventPublisher)(nil)

func NewLeaveEventPublisher(writer MessageWriter, topic string) *LeaveEventPublisher {
	if topic == "" {
		topic = events.LeaveLifecycleTopic
	}
	return &LeaveEventPublisher{writer: writer, topic: topic}
}

func (p *LeaveEventPublisher) Publish(ctx context.Context, event leave.LeaveEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	return publishEvent(ctx, p.writer, p.topic, kafka.OutboxEvent{
		ID:            event.ID,
		AggregateID:   event.LeaveID,
		EventType:     string(event.Type),
		Source:        event.Source,
		SchemaVersion: event.Payload.SchemaVersion,
		Payload:       payload,
		OccurredAt:    event.OccurredAt,
	})
}

func publishEvent(ctx context.Context, writer MessageWriter, topic string, event kafka.OutboxEvent) error {
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}

	value, err := json.Marshal(events.LeaveEventMessage{
		EventID:       event.ID,
		EventType:     event.EventType,
		LeaveID:       event.AggregateID,
		Source:        event.Source,
		SchemaVersion: event.SchemaVersion,
		OccurredAt:    event.OccurredAt,
		Payload:       json.RawMessage(event.Payload),
	})
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(event.AggregateID),
		Value: value,
		Headers: []kafkago.Header{
			{Key: events.HeaderEventType, Value: []byte(event.EventType)},
			{Key: events.HeaderSchemaVersion, Value: []byte(strconv.Itoa(event.SchemaVersion))},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
