package leave

import "context"

//go:generate mockgen -source=leave_event_publisher.go -destination=mock/leave_event_publisher_mock.go -package=mock
type EventPublisher interface {
	Publish(ctx context.Context, event LeaveEvent) error
}

// EventLog records the delivery outcome of a stored event so that
// undelivered ones are relayed later.
type EventLog interface {
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, LeaveEvent) error {
	return nil
}
