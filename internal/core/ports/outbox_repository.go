package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// OutboxMessage is a committed domain event waiting to be relayed.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventName   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges outbox rows. Rows are written by
// the unit of work on commit.
type OutboxRepository interface {
	// GetUnpublished returns at most limit unpublished messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the given messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}
