package order

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// Transitioned is recorded every time an order changes state.
type Transitioned struct {
	ID         kernel.UUID `json:"event_id"`
	OrderID    kernel.UUID `json:"order_id"`
	Workflow   string      `json:"workflow"`
	Transition string      `json:"transition"`
	From       string      `json:"from"`
	To         string      `json:"to"`
	At         time.Time   `json:"at"`
}

func (e Transitioned) EventID() kernel.UUID     { return e.ID }
func (e Transitioned) EventName() string        { return "order.transitioned" }
func (e Transitioned) AggregateID() kernel.UUID { return e.OrderID }
func (e Transitioned) OccurredAt() time.Time    { return e.At }
