package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Concrete events are plain
// structs with exported fields so adapters can serialize them as-is.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventRecorder is implemented by aggregates that buffer events until the
// unit of work persists them.
type EventRecorder interface {
	PullEvents() []DomainEvent
}
