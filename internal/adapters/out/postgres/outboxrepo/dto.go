// Package outboxrepo stores domain events in the transactional outbox and
// serves them to the relay job.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
)

// OutboxMessageDTO is one serialized domain event. PublishedAt stays nil
// until the relay job has handed the message to the broker.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;index;not null"`
	EventName   string     `gorm:"not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"index;not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}
