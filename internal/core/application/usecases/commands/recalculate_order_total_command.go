package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrRecalculateOrderTotalCommandIsNotConstructed = errors.New(
	"RecalculateOrderTotalCommand must be created via NewRecalculateOrderTotalCommand constructor",
)

// RecalculateOrderTotalCommand refreshes the shipping adjustments of an order
// from the amounts of its shipments.
type RecalculateOrderTotalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecalculateOrderTotalCommand(orderID kernel.UUID) (RecalculateOrderTotalCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecalculateOrderTotalCommand{}, err
	}

	return RecalculateOrderTotalCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecalculateOrderTotalCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateOrderTotalCommandIsNotConstructed)
}

func (c RecalculateOrderTotalCommand) OrderID() kernel.UUID {
	return c.orderID
}
