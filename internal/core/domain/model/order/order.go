package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/workflow"
	"shipping/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate the shipping subsystem plans shipments for. It owns
// its lines, the ordered list of shipment references and the price
// adjustments contributed by other subsystems.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and store
//   - Every line and adjustment uses the order currency
//   - State changes only through ApplyTransition against the order's workflow
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// storeID identifies the store the order was placed in
	storeID string

	// email is the customer contact, optional
	email string

	// currency is the ISO 4217 code shared by every amount on the order
	currency string

	// workflowID selects the order workflow (order_default, order_fulfillment...)
	workflowID string

	// state is the current workflow state
	state string

	items       []*Item
	shipmentIDs []kernel.UUID
	adjustments []kernel.Adjustment

	events []kernel.DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in the initial state of wf.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - storeID: Store the order belongs to (required)
//   - email: Customer email, may be empty
//   - currency: ISO 4217 code for every amount on the order
//   - wf: The order workflow; the order starts in its initial state
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "main", "buyer@example.com", "USD", wf)
//	if err != nil {
//	    // Handle validation error
//	}
//	err = o.AddItem(line)
func NewOrder(id kernel.UUID, storeID, email, currency string, wf *workflow.Workflow) (*Order, error) {
	o := &Order{
		email:         email,
		items:         make([]*Item, 0),
		shipmentIDs:   make([]kernel.UUID, 0),
		adjustments:   make([]kernel.Adjustment, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStoreID(storeID),
		o.setCurrency(currency),
		o.setWorkflow(wf),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage. Unlike NewOrder
// it accepts any state declared by the workflow and records no events.
func RestoreOrder(
	id kernel.UUID,
	storeID, email, currency, workflowID, state string,
	items []*Item,
	shipmentIDs []kernel.UUID,
	adjustments []kernel.Adjustment,
) (*Order, error) {
	o := &Order{
		email:         email,
		workflowID:    workflowID,
		state:         state,
		items:         make([]*Item, 0, len(items)),
		shipmentIDs:   make([]kernel.UUID, 0, len(shipmentIDs)),
		adjustments:   make([]kernel.Adjustment, 0, len(adjustments)),
		isConstructed: true,
	}

	problems := []error{
		o.setID(id),
		o.setStoreID(storeID),
		o.setCurrency(currency),
	}
	if workflowID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("workflow"))
	}
	if state == "" {
		problems = append(problems, errs.NewValueIsRequiredError("state"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}
	o.SetShipments(shipmentIDs)
	for _, a := range adjustments {
		if err := o.AddAdjustment(a); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the store the order was placed in.
func (o *Order) StoreID() string {
	return o.storeID
}

// Email returns the customer email, possibly empty.
func (o *Order) Email() string {
	return o.email
}

// Currency returns the order currency code.
func (o *Order) Currency() string {
	return o.currency
}

// WorkflowID returns the id of the workflow governing the order.
func (o *Order) WorkflowID() string {
	return o.workflowID
}

// State returns the current workflow state.
func (o *Order) State() string {
	return o.state
}

// Items returns the order lines in insertion order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// AddItem appends an order line. The line price must use the order currency.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order item", err)
	}
	if item.UnitPrice().Currency() != o.currency {
		return errs.NewValueIsInvalidErrorWithCause("order item",
			fmt.Errorf("%w: line is priced in %s, order in %s", kernel.ErrCurrencyMismatch, item.UnitPrice().Currency(), o.currency))
	}
	o.items = append(o.items, item)
	return nil
}

// Shipments returns the ordered shipment references.
func (o *Order) Shipments() []kernel.UUID {
	return slices.Clone(o.shipmentIDs)
}

// HasShipments reports whether the order references at least one shipment.
func (o *Order) HasShipments() bool {
	return len(o.shipmentIDs) > 0
}

// SetShipments replaces the shipment reference list. The order of ids is the
// positional order reconciliation relies on.
func (o *Order) SetShipments(ids []kernel.UUID) {
	o.shipmentIDs = slices.Clone(ids)
	if o.shipmentIDs == nil {
		o.shipmentIDs = make([]kernel.UUID, 0)
	}
}

// Adjustments returns the order level adjustments in insertion order.
func (o *Order) Adjustments() []kernel.Adjustment {
	return slices.Clone(o.adjustments)
}

// AddAdjustment appends an adjustment in the order currency.
func (o *Order) AddAdjustment(a kernel.Adjustment) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("adjustment", err)
	}
	if a.Amount().Currency() != o.currency {
		return errs.NewValueIsInvalidErrorWithCause("adjustment",
			fmt.Errorf("%w: adjustment is in %s, order in %s", kernel.ErrCurrencyMismatch, a.Amount().Currency(), o.currency))
	}
	o.adjustments = append(o.adjustments, a)
	return nil
}

// RemoveAdjustmentsByType drops every adjustment of the given type and
// returns how many were removed.
func (o *Order) RemoveAdjustmentsByType(t kernel.AdjustmentType) int {
	before := len(o.adjustments)
	o.adjustments = slices.DeleteFunc(o.adjustments, func(a kernel.Adjustment) bool {
		return a.Type() == t
	})
	return before - len(o.adjustments)
}

// Subtotal is the sum of line totals.
func (o *Order) Subtotal() (kernel.Money, error) {
	total, err := kernel.ZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}
	for _, item := range o.items {
		if total, err = total.Add(item.TotalPrice()); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// Total is the subtotal plus every adjustment.
func (o *Order) Total() (kernel.Money, error) {
	total, err := o.Subtotal()
	if err != nil {
		return kernel.Money{}, err
	}
	for _, a := range o.adjustments {
		if total, err = total.Add(a.Amount()); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// ApplyTransition moves the order along wf and returns the states it moved
// between. wf must be the order's own workflow.
//
// Example:
//
//	from, to, err := o.ApplyTransition(wf, order.TransitionPlace)
//	if err != nil {
//	    // errs.ErrTransitionIsNotAllowed
//	}
//	shipments, err = synchronizer.OnOrderTransitioned(o, from, to, shipments)
func (o *Order) ApplyTransition(wf *workflow.Workflow, transitionID string) (string, string, error) {
	if err := wf.Validate(); err != nil {
		return "", "", err
	}
	if wf.ID() != o.workflowID {
		return "", "", errs.NewValueIsInvalidErrorWithCause("workflow",
			fmt.Errorf("order %s uses %s, got %s", o.id, o.workflowID, wf.ID()))
	}

	t, err := wf.Apply(o.state, transitionID)
	if err != nil {
		return "", "", err
	}

	from := o.state
	o.state = t.To
	o.events = append(o.events, Transitioned{
		ID:         kernel.NewUUID(),
		OrderID:    o.id,
		Workflow:   o.workflowID,
		Transition: t.ID,
		From:       from,
		To:         t.To,
		At:         time.Now().UTC(),
	})
	return from, t.To, nil
}

// PullEvents returns and clears the recorded domain events.
func (o *Order) PullEvents() []kernel.DomainEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("store")
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setCurrency(currency string) error {
	if _, err := kernel.ZeroMoney(currency); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

func (o *Order) setWorkflow(wf *workflow.Workflow) error {
	if err := wf.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workflow", err)
	}
	o.workflowID = wf.ID()
	o.state = wf.InitialState()
	return nil
}
