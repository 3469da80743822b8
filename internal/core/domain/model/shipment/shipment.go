package shipment

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/workflow"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is one physical parcel of an order.
//
// Shipment follows these invariants:
//   - The order back-reference never changes after creation
//   - Weight is derived from the items and recomputed on every item change
//   - Amount is only set by selecting a shipping rate
//   - State only changes through ApplyTransition against the type's workflow
type Shipment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	shipmentType Type

	title             string
	packageTypeID     string
	shippingMethodID  string
	shippingService   string
	shippingProfileID *kernel.UUID

	items       []Item
	weight      kernel.Weight
	amount      *kernel.Money
	adjustments []kernel.Adjustment

	trackingCode string
	state        string
	data         map[string]any
	fields       map[string]any

	createdAt time.Time
	changedAt time.Time
	shippedAt *time.Time

	events []kernel.DomainEvent

	guard guard.ConstructorGuard
}

// NewShipment creates an empty shipment of type t in the initial state of wf.
// wf must be the workflow the type selects.
//
// Example:
//
//	s, err := shipment.NewShipment(kernel.NewUUID(), o.ID(), defaultType, wf, now)
//	if err != nil {
//	    return err
//	}
//	err = s.PopulateFromProposedShipment(proposed, now)
func NewShipment(id, orderID kernel.UUID, t Type, wf *workflow.Workflow, now time.Time) (*Shipment, error) {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if err := t.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("type", err))
	}
	if err := wf.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("workflow", err))
	} else if t.Validate() == nil && wf.ID() != t.WorkflowID() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("workflow",
			fmt.Errorf("shipment type %s uses %s, got %s", t.ID(), t.WorkflowID(), wf.ID())))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Shipment{
		id:           id,
		orderID:      orderID,
		shipmentType: t,
		items:        make([]Item, 0),
		weight:       kernel.ZeroWeight(kernel.Gram),
		adjustments:  make([]kernel.Adjustment, 0),
		state:        wf.InitialState(),
		data:         make(map[string]any),
		fields:       make(map[string]any),
		createdAt:    now,
		changedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Snapshot carries every persisted property of a shipment.
type Snapshot struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	Type              Type
	Title             string
	PackageTypeID     string
	ShippingMethodID  string
	ShippingService   string
	ShippingProfileID *kernel.UUID
	Items             []Item
	Amount            *kernel.Money
	Adjustments       []kernel.Adjustment
	TrackingCode      string
	State             string
	Data              map[string]any
	Fields            map[string]any
	CreatedAt         time.Time
	ChangedAt         time.Time
	ShippedAt         *time.Time
}

// RestoreShipment rebuilds a shipment from storage. The state is taken as-is
// and no events are recorded.
func RestoreShipment(s Snapshot) (*Shipment, error) {
	var problems []error
	if err := s.ID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := s.OrderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if err := s.Type.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("type", err))
	}
	if s.State == "" {
		problems = append(problems, errs.NewValueIsRequiredError("state"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	restored := &Shipment{
		id:                s.ID,
		orderID:           s.OrderID,
		shipmentType:      s.Type,
		title:             s.Title,
		packageTypeID:     s.PackageTypeID,
		shippingMethodID:  s.ShippingMethodID,
		shippingService:   s.ShippingService,
		shippingProfileID: copyOf(s.ShippingProfileID),
		amount:            copyOf(s.Amount),
		adjustments:       slices.Clone(s.Adjustments),
		trackingCode:      s.TrackingCode,
		state:             s.State,
		data:              cloneFields(s.Data),
		fields:            cloneFields(s.Fields),
		createdAt:         s.CreatedAt,
		changedAt:         s.ChangedAt,
		shippedAt:         copyOf(s.ShippedAt),
		guard:             guard.NewConstructorGuard(),
	}
	if restored.adjustments == nil {
		restored.adjustments = make([]kernel.Adjustment, 0)
	}
	if err := restored.setItems(s.Items); err != nil {
		return nil, err
	}
	return restored, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID      { return s.id }
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }
func (s *Shipment) Type() Type           { return s.shipmentType }

func (s *Shipment) Title() string { return s.title }

func (s *Shipment) SetTitle(title string, now time.Time) {
	s.title = title
	s.touch(now)
}

// PackageTypeID is empty when the default package type applies.
func (s *Shipment) PackageTypeID() string { return s.packageTypeID }

func (s *Shipment) SetPackageTypeID(id string, now time.Time) {
	s.packageTypeID = id
	s.touch(now)
}

func (s *Shipment) ShippingMethodID() string { return s.shippingMethodID }
func (s *Shipment) ShippingService() string  { return s.shippingService }

// ShippingProfileID returns the destination profile, nil until one is set.
func (s *Shipment) ShippingProfileID() *kernel.UUID {
	return copyOf(s.shippingProfileID)
}

// SetShippingProfileID assigns the destination profile. The last write wins.
func (s *Shipment) SetShippingProfileID(id kernel.UUID, now time.Time) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipping_profile", err)
	}
	s.shippingProfileID = &id
	s.touch(now)
	return nil
}

func (s *Shipment) Items() []Item {
	return slices.Clone(s.items)
}

// SetItems replaces the items and recomputes the weight.
func (s *Shipment) SetItems(items []Item, now time.Time) error {
	if err := s.setItems(items); err != nil {
		return err
	}
	s.touch(now)
	return nil
}

func (s *Shipment) AddItem(item Item, now time.Time) error {
	return s.SetItems(append(slices.Clone(s.items), item), now)
}

// RemoveItem removes the first item equal to item and reports whether one was found.
func (s *Shipment) RemoveItem(item Item, now time.Time) (bool, error) {
	idx := slices.IndexFunc(s.items, item.Equal)
	if idx < 0 {
		return false, nil
	}
	if err := s.SetItems(slices.Delete(slices.Clone(s.items), idx, idx+1), now); err != nil {
		return false, err
	}
	return true, nil
}

// Weight is the sum of the item weights, in the unit of the first weighed item.
func (s *Shipment) Weight() kernel.Weight { return s.weight }

// Amount is nil until a shipping rate is selected.
func (s *Shipment) Amount() *kernel.Money {
	return copyOf(s.amount)
}

// SelectShippingRate records the chosen carrier method, its service and the
// quoted amount.
func (s *Shipment) SelectShippingRate(methodID, service string, amount kernel.Money, now time.Time) error {
	var problems []error
	if methodID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("shipping_method"))
	}
	if err := amount.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("amount", err))
	} else if amount.Amount().IsNegative() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	s.shippingMethodID = methodID
	s.shippingService = service
	s.amount = &amount
	s.touch(now)
	return nil
}

func (s *Shipment) Adjustments() []kernel.Adjustment {
	return slices.Clone(s.adjustments)
}

func (s *Shipment) AddAdjustment(a kernel.Adjustment, now time.Time) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("adjustment", err)
	}
	s.adjustments = append(s.adjustments, a)
	s.touch(now)
	return nil
}

// RemoveAdjustmentsByType drops every adjustment of type t and returns how
// many were removed.
func (s *Shipment) RemoveAdjustmentsByType(t kernel.AdjustmentType, now time.Time) int {
	before := len(s.adjustments)
	s.adjustments = slices.DeleteFunc(s.adjustments, func(a kernel.Adjustment) bool {
		return a.Type() == t
	})
	removed := before - len(s.adjustments)
	if removed > 0 {
		s.touch(now)
	}
	return removed
}

func (s *Shipment) TrackingCode() string { return s.trackingCode }

func (s *Shipment) SetTrackingCode(code string, now time.Time) {
	s.trackingCode = code
	s.touch(now)
}

func (s *Shipment) State() string { return s.state }

// ApplyTransition moves the shipment along wf. Entering "shipped" records the
// shipped time.
func (s *Shipment) ApplyTransition(wf *workflow.Workflow, transitionID string, now time.Time) error {
	if err := wf.Validate(); err != nil {
		return err
	}
	if wf.ID() != s.shipmentType.WorkflowID() {
		return errs.NewValueIsInvalidErrorWithCause("workflow",
			fmt.Errorf("shipment %s uses %s, got %s", s.id, s.shipmentType.WorkflowID(), wf.ID()))
	}

	t, err := wf.Apply(s.state, transitionID)
	if err != nil {
		return err
	}

	from := s.state
	s.state = t.To
	if t.To == StateShipped {
		shipped := now
		s.shippedAt = &shipped
	}
	s.touch(now)
	s.events = append(s.events, StateChanged{
		ID:         kernel.NewUUID(),
		ShipmentID: s.id,
		OrderID:    s.orderID,
		Workflow:   wf.ID(),
		Transition: t.ID,
		From:       from,
		To:         t.To,
		At:         now,
	})
	return nil
}

// Data returns the value stored under key in the extension bag.
func (s *Shipment) Data(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *Shipment) SetData(key string, value any, now time.Time) {
	s.data[key] = value
	s.touch(now)
}

func (s *Shipment) UnsetData(key string, now time.Time) {
	delete(s.data, key)
	s.touch(now)
}

// AllData returns a copy of the extension bag.
func (s *Shipment) AllData() map[string]any {
	return maps.Clone(s.data)
}

// Field returns the value of a field declared by the shipment type.
func (s *Shipment) Field(name string) (any, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// Fields returns a copy of the type-declared field values.
func (s *Shipment) Fields() map[string]any {
	return maps.Clone(s.fields)
}

// SetCustomField assigns a field by name. It reports false without error
// when the name is neither a free-value base field nor declared by the type.
func (s *Shipment) SetCustomField(name string, value any, now time.Time) (bool, error) {
	switch {
	case name == FieldTitle || name == FieldTrackingCode:
		str, ok := value.(string)
		if !ok {
			return true, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%T is not a string", value))
		}
		if name == FieldTitle {
			s.SetTitle(str, now)
		} else {
			s.SetTrackingCode(str, now)
		}
		return true, nil
	case s.shipmentType.Declares(name):
		s.fields[name] = value
		s.touch(now)
		return true, nil
	default:
		return false, nil
	}
}

// PopulateFromProposedShipment copies the plan onto the shipment: items,
// package type, shipping profile and every recognized custom field.
// The carrier selection, tracking code and state are left untouched unless a
// custom field names them.
func (s *Shipment) PopulateFromProposedShipment(p ProposedShipment, now time.Time) error {
	if !p.OrderID().IsEqual(s.orderID) {
		return errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("proposed shipment belongs to order %s, shipment to %s", p.OrderID(), s.orderID))
	}
	if err := s.setItems(p.Items()); err != nil {
		return err
	}
	s.packageTypeID = p.PackageTypeID()
	if profileID := p.ShippingProfileID(); profileID != nil {
		if err := s.SetShippingProfileID(*profileID, now); err != nil {
			return err
		}
	}

	fields := p.CustomFields()
	names := slices.Sorted(maps.Keys(fields))
	for _, name := range names {
		if _, err := s.SetCustomField(name, fields[name], now); err != nil {
			return err
		}
	}
	s.touch(now)
	return nil
}

func (s *Shipment) CreatedAt() time.Time { return s.createdAt }
func (s *Shipment) ChangedAt() time.Time { return s.changedAt }

// ShippedAt is nil until the shipment enters the shipped state.
func (s *Shipment) ShippedAt() *time.Time {
	return copyOf(s.shippedAt)
}

// PullEvents returns and clears the recorded domain events.
func (s *Shipment) PullEvents() []kernel.DomainEvent {
	events := s.events
	s.events = nil
	return events
}

func (s *Shipment) setItems(items []Item) error {
	weight := kernel.ZeroWeight(kernel.Gram)
	weighed := false
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("element %d: %w", idx, err))
		}
		w := item.Weight()
		if w == nil {
			continue
		}
		if !weighed {
			weight = kernel.ZeroWeight(w.Unit())
			weighed = true
		}
		sum, err := weight.Add(*w)
		if err != nil {
			return err
		}
		weight = sum
	}
	s.items = slices.Clone(items)
	if s.items == nil {
		s.items = make([]Item, 0)
	}
	s.weight = weight
	return nil
}

func (s *Shipment) touch(now time.Time) {
	if now.After(s.changedAt) {
		s.changedAt = now
	}
}
