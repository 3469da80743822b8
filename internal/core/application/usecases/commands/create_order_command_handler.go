package commands

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The order starts in the initial state of its workflow and has no shipments.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, workflows)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now in draft and ready to be packed
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	workflows  ports.WorkflowRegistry
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and the workflow
// registry the order's lifecycle is resolved from.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, workflows ports.WorkflowRegistry) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		workflows:  workflows,
	}
}

// Handle builds the order with its lines and persists it in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	wf, err := h.workflows.Get(cmd.WorkflowID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.StoreID(), cmd.Email(), cmd.Currency(), wf)
	if err != nil {
		return err
	}
	for i, line := range cmd.Lines() {
		item, err := newOrderItem(line, cmd.Currency())
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if err = o.AddItem(item); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func newOrderItem(line OrderLine, currency string) (*order.Item, error) {
	price, err := kernel.NewMoney(line.UnitPrice, currency)
	if err != nil {
		return nil, err
	}

	var entity *order.PurchasedEntity
	if line.PurchasedEntityID != "" {
		entity, err = order.NewPurchasedEntity(line.PurchasedEntityID, line.PurchasedEntityType, line.Shippable, line.Weight)
		if err != nil {
			return nil, err
		}
	}

	return order.NewItem(line.ID, line.Title, entity, line.Quantity, price)
}
