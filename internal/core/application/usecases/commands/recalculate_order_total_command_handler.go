package commands

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
)

// RecalculateOrderTotalCommandHandler drops the order's shipping adjustments
// and lets the ShipmentOrderProcessor add one per rated shipment. Running it
// twice yields the same total.
type RecalculateOrderTotalCommandHandler struct {
	uowFactory UoWFactory
	processor  services.ShipmentOrderProcessor
}

func NewRecalculateOrderTotalCommandHandler(
	uowFactory UoWFactory,
	processor services.ShipmentOrderProcessor,
) RecalculateOrderTotalCommandHandler {
	return RecalculateOrderTotalCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
	}
}

// Handle returns the recalculated order total.
func (h RecalculateOrderTotalCommandHandler) Handle(
	ctx context.Context,
	cmd RecalculateOrderTotalCommand,
) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return kernel.Money{}, err
	}

	shipments, err := uow.ShipmentRepository().GetAllByOrder(ctx, o.ID())
	if err != nil {
		return kernel.Money{}, err
	}

	o.RemoveAdjustmentsByType(kernel.AdjustmentTypeShipping)
	if err = h.processor.Process(o, shipments); err != nil {
		return kernel.Money{}, err
	}

	total, err := o.Total()
	if err != nil {
		return kernel.Money{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.Money{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Money{}, err
	}

	return total, nil
}
