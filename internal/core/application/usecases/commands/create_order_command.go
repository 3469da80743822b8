package commands

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine describes one line of a new order. PurchasedEntityID is empty for
// lines whose catalog item is no longer available.
type OrderLine struct {
	ID                  kernel.UUID
	Title               string
	PurchasedEntityID   string
	PurchasedEntityType string
	Shippable           bool
	Weight              *kernel.Weight
	Quantity            decimal.Decimal
	UnitPrice           decimal.Decimal
}

// CreateOrderCommand represents a request to register an order placed in the
// storefront so that it can be packed into shipments.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, "main", "jane@example.com", "USD", "", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, workflows)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	storeID    string
	email      string
	currency   string
	workflowID string
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// An empty workflowID selects order.WorkflowDefault.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	storeID, email, currency, workflowID string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		email:      email,
		currency:   currency,
		workflowID: workflowID,
		guard:      guard.NewConstructorGuard(),
	}
	if cmd.workflowID == "" {
		cmd.workflowID = order.WorkflowDefault
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStoreID(storeID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) StoreID() string {
	return c.storeID
}

func (c CreateOrderCommand) Email() string {
	return c.email
}

func (c CreateOrderCommand) Currency() string {
	return c.currency
}

func (c CreateOrderCommand) WorkflowID() string {
	return c.workflowID
}

func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("store_id")
	}

	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	var errList []error
	for i, line := range lines {
		if err := line.ID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"lines", fmt.Errorf("line %d: %w", i, err)))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
