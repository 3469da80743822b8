package services

import (
	"fmt"
	"time"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/workflow"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// OrderLifecycleSynchronizer drives shipment transitions from order
// transitions. The owner of the order lifecycle calls OnOrderTransitioned
// right after a successful order transition, inside the same transaction.
//
// Rules, first match wins:
//   - order enters canceled: every shipment is canceled
//   - order enters fulfillment: every shipment is finalized
//   - order leaves fulfillment for completed: every shipment is shipped
//
// A shipment that cannot take the transition is a hard error: the caller
// must roll back rather than leave order and shipments out of step.
type OrderLifecycleSynchronizer struct {
	workflows ports.WorkflowRegistry
	clock     func() time.Time
}

// NewOrderLifecycleSynchronizer builds a synchronizer. A nil clock uses time.Now.
func NewOrderLifecycleSynchronizer(workflows ports.WorkflowRegistry, clock func() time.Time) *OrderLifecycleSynchronizer {
	if clock == nil {
		clock = time.Now
	}
	return &OrderLifecycleSynchronizer{workflows: workflows, clock: clock}
}

// ShipmentTransitionFor returns the shipment transition an order transition
// from → to triggers, or "" when shipments are not affected.
func ShipmentTransitionFor(from, to string) string {
	switch {
	case to == order.StateCanceled:
		return shipment.TransitionCancel
	case to == order.StateFulfillment:
		return shipment.TransitionFinalize
	case from == order.StateFulfillment && to == order.StateCompleted:
		return shipment.TransitionShip
	default:
		return ""
	}
}

// OnOrderTransitioned applies the matching transition to every shipment and
// returns the shipments that changed, in input order.
func (s *OrderLifecycleSynchronizer) OnOrderTransitioned(
	o *order.Order,
	from, to string,
	shipments []*shipment.Shipment,
) ([]*shipment.Shipment, error) {
	transition := ShipmentTransitionFor(from, to)
	if transition == "" || len(shipments) == 0 {
		return []*shipment.Shipment{}, nil
	}

	now := s.clock().UTC()
	workflows := make(map[string]*workflow.Workflow)
	changed := make([]*shipment.Shipment, 0, len(shipments))

	for _, sh := range shipments {
		if !sh.OrderID().IsEqual(o.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("shipments",
				fmt.Errorf("shipment %s belongs to order %s, not %s", sh.ID(), sh.OrderID(), o.ID()))
		}

		workflowID := sh.Type().WorkflowID()
		wf, ok := workflows[workflowID]
		if !ok {
			var err error
			if wf, err = s.workflows.Get(workflowID); err != nil {
				return nil, err
			}
			workflows[workflowID] = wf
		}

		if err := sh.ApplyTransition(wf, transition, now); err != nil {
			return nil, fmt.Errorf("shipment %s: %w", sh.ID(), err)
		}
		changed = append(changed, sh)
	}
	return changed, nil
}
