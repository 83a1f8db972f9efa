package events

import "context"

// NoopPublisher is a Publisher that does nothing. The server falls back to
// it when GATEKEEP_NATS_URL is unset, so gate and checkpoint mutations
// proceed without an event bus.
type NoopPublisher struct{}

func (n *NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}
