package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrRepackOrderCommandIsNotConstructed = errors.New(
	"RepackOrderCommand must be created via NewRepackOrderCommand constructor",
)

// RepackOrderCommand asks for the shipments of an order to be recomputed for
// the given destination profile.
type RepackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	profileID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRepackOrderCommand(orderID, profileID kernel.UUID) (RepackOrderCommand, error) {
	cmd := RepackOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProfileID(profileID),
	); err != nil {
		return RepackOrderCommand{}, err
	}

	return cmd, nil
}

func (c RepackOrderCommand) Validate() error {
	return c.guard.Validate(ErrRepackOrderCommandIsNotConstructed)
}

func (c RepackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RepackOrderCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c *RepackOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RepackOrderCommand) setProfileID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.profileID = id
	return nil
}
