package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
)

// envelope is the message body written to the broker. Payload is the event
// exactly as it was stored in the outbox.
type envelope struct {
	EventID     kernel.UUID     `json:"event_id"`
	EventName   string          `json:"event_name"`
	AggregateID kernel.UUID     `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// RelayOutboxCommandHandler forwards outbox messages to the event publisher
// in the order they were recorded. Delivery is at least once: a message is
// marked published only after the broker accepted it.
type RelayOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
}

func NewRelayOutboxCommandHandler(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		outbox:    outbox,
		publisher: publisher,
	}
}

// Handle returns the number of messages published. When publishing stops
// halfway, the messages already accepted are still marked.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, m := range messages {
		body, marshalErr := json.Marshal(envelope{
			EventID:     m.ID,
			EventName:   m.EventName,
			AggregateID: m.AggregateID,
			OccurredAt:  m.OccurredAt,
			Payload:     m.Payload,
		})
		if marshalErr != nil {
			publishErr = fmt.Errorf("encode %s: %w", m.ID, marshalErr)
			break
		}
		if err = h.publisher.Publish(ctx, m.AggregateID.String(), body); err != nil {
			publishErr = fmt.Errorf("publish %s: %w", m.ID, err)
			break
		}
		published = append(published, m.ID)
	}

	if len(published) > 0 {
		if err = h.outbox.MarkPublished(ctx, published, time.Now().UTC()); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}
