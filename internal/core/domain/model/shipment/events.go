package shipment

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// StateChanged is recorded on every successful shipment transition.
type StateChanged struct {
	ID         kernel.UUID `json:"event_id"`
	ShipmentID kernel.UUID `json:"shipment_id"`
	OrderID    kernel.UUID `json:"order_id"`
	Workflow   string      `json:"workflow"`
	Transition string      `json:"transition"`
	From       string      `json:"from"`
	To         string      `json:"to"`
	At         time.Time   `json:"at"`
}

func (e StateChanged) EventID() kernel.UUID     { return e.ID }
func (e StateChanged) EventName() string        { return "shipment.state_changed" }
func (e StateChanged) AggregateID() kernel.UUID { return e.ShipmentID }
func (e StateChanged) OccurredAt() time.Time    { return e.At }
