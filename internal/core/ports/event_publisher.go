package ports

import "context"

// EventPublisher delivers a serialized domain event to the message broker.
// key groups related events (the aggregate id) so they stay ordered.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}
