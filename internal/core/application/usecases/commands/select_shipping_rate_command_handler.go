package commands

import (
	"context"
	"time"
)

// SelectShippingRateCommandHandler stores the selected rate on a shipment.
type SelectShippingRateCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewSelectShippingRateCommandHandler(uowFactory ShipmentUoWFactory) SelectShippingRateCommandHandler {
	return SelectShippingRateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SelectShippingRateCommandHandler) Handle(ctx context.Context, cmd SelectShippingRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = s.SelectShippingRate(cmd.MethodID(), cmd.Service(), cmd.Amount(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
