package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrSelectShippingRateCommandIsNotConstructed = errors.New(
	"SelectShippingRateCommand must be created via NewSelectShippingRateCommand constructor",
)

// SelectShippingRateCommand records the rate chosen for a shipment. Rates are
// quoted outside of this service; the command only stores the outcome.
type SelectShippingRateCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	methodID   string
	service    string
	amount     kernel.Money

	guard guard.ConstructorGuard
}

func NewSelectShippingRateCommand(
	shipmentID kernel.UUID,
	methodID, service string,
	amount kernel.Money,
) (SelectShippingRateCommand, error) {
	cmd := SelectShippingRateCommand{
		service: service,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setMethodID(methodID),
		cmd.setAmount(amount),
	); err != nil {
		return SelectShippingRateCommand{}, err
	}

	return cmd, nil
}

func (c SelectShippingRateCommand) Validate() error {
	return c.guard.Validate(ErrSelectShippingRateCommandIsNotConstructed)
}

func (c SelectShippingRateCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c SelectShippingRateCommand) MethodID() string {
	return c.methodID
}

func (c SelectShippingRateCommand) Service() string {
	return c.service
}

func (c SelectShippingRateCommand) Amount() kernel.Money {
	return c.amount
}

func (c *SelectShippingRateCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *SelectShippingRateCommand) setMethodID(methodID string) error {
	if methodID == "" {
		return errs.NewValueIsRequiredError("shipping_method")
	}
	c.methodID = methodID
	return nil
}

func (c *SelectShippingRateCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("amount", err)
	}
	c.amount = amount
	return nil
}
