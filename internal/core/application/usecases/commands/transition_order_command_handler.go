package commands

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// TransitionOrderCommandHandler moves an order along its workflow and brings
// the order's shipments into the matching state in the same transaction.
// An illegal shipment transition aborts the whole request.
type TransitionOrderCommandHandler struct {
	uowFactory   UoWFactory
	workflows    ports.WorkflowRegistry
	synchronizer *services.OrderLifecycleSynchronizer
}

func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory,
	workflows ports.WorkflowRegistry,
	synchronizer *services.OrderLifecycleSynchronizer,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:   uowFactory,
		workflows:    workflows,
		synchronizer: synchronizer,
	}
}

// Handle returns the state the order ended up in.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	wf, err := h.workflows.Get(o.WorkflowID())
	if err != nil {
		return "", err
	}

	from, to, err := o.ApplyTransition(wf, cmd.Transition())
	if err != nil {
		return "", err
	}

	shipments, err := shipmentRepo.GetAllByOrder(ctx, o.ID())
	if err != nil {
		return "", err
	}

	changed, err := h.synchronizer.OnOrderTransitioned(o, from, to, shipments)
	if err != nil {
		return "", err
	}

	for _, s := range changed {
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return "", err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return to, nil
}
