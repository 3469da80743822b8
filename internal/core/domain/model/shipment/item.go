package shipment

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("shipment Item must be created via NewItem constructor")

// ItemDefinition lists the properties of a shipment item. PurchasedEntityID,
// PurchasedEntityType and a non-zero Quantity are required.
type ItemDefinition struct {
	OrderItemID         kernel.UUID
	PurchasedEntityID   string
	PurchasedEntityType string
	Title               string
	Quantity            decimal.Decimal
	Weight              *kernel.Weight
	DeclaredValue       *kernel.Money
}

// Item is one unit of shippable content: a purchased entity and the quantity
// of it going into a shipment. Several items may come from the same order line.
type Item struct {
	orderItemID         kernel.UUID
	purchasedEntityID   string
	purchasedEntityType string
	title               string
	quantity            decimal.Decimal
	weight              *kernel.Weight
	declaredValue       *kernel.Money

	guard guard.ConstructorGuard
}

// NewItem validates def and builds an immutable item. A zero quantity counts
// as missing; a negative one is invalid.
func NewItem(def ItemDefinition) (Item, error) {
	var problems []error
	if def.PurchasedEntityID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("purchased_entity_id"))
	}
	if def.PurchasedEntityType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("purchased_entity_type"))
	}
	switch {
	case def.Quantity.IsZero():
		problems = append(problems, errs.NewValueIsRequiredError("quantity"))
	case def.Quantity.IsNegative():
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", def.Quantity)))
	}
	if def.Weight != nil {
		if err := def.Weight.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("weight", err))
		}
	}
	if def.DeclaredValue != nil {
		if err := def.DeclaredValue.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("declared_value", err))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return Item{}, err
	}

	return Item{
		orderItemID:         def.OrderItemID,
		purchasedEntityID:   def.PurchasedEntityID,
		purchasedEntityType: def.PurchasedEntityType,
		title:               def.Title,
		quantity:            def.Quantity,
		weight:              copyOf(def.Weight),
		declaredValue:       copyOf(def.DeclaredValue),
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) OrderItemID() kernel.UUID {
	return i.orderItemID
}

func (i Item) PurchasedEntityID() string {
	return i.purchasedEntityID
}

func (i Item) PurchasedEntityType() string {
	return i.purchasedEntityType
}

func (i Item) Title() string {
	return i.title
}

func (i Item) Quantity() decimal.Decimal {
	return i.quantity
}

// Weight is nil when the packer had no weight data for the item.
func (i Item) Weight() *kernel.Weight {
	return copyOf(i.weight)
}

func (i Item) DeclaredValue() *kernel.Money {
	return copyOf(i.declaredValue)
}

// Definition returns the properties the item was built from.
func (i Item) Definition() ItemDefinition {
	return ItemDefinition{
		OrderItemID:         i.orderItemID,
		PurchasedEntityID:   i.purchasedEntityID,
		PurchasedEntityType: i.purchasedEntityType,
		Title:               i.title,
		Quantity:            i.quantity,
		Weight:              copyOf(i.weight),
		DeclaredValue:       copyOf(i.declaredValue),
	}
}

// Equal compares every property; decimals and measurements compare numerically.
func (i Item) Equal(other Item) bool {
	if i.orderItemID != other.orderItemID ||
		i.purchasedEntityID != other.purchasedEntityID ||
		i.purchasedEntityType != other.purchasedEntityType ||
		i.title != other.title ||
		!i.quantity.Equal(other.quantity) {
		return false
	}
	if (i.weight == nil) != (other.weight == nil) || (i.weight != nil && !i.weight.Equal(*other.weight)) {
		return false
	}
	if (i.declaredValue == nil) != (other.declaredValue == nil) ||
		(i.declaredValue != nil && !i.declaredValue.Equal(*other.declaredValue)) {
		return false
	}
	return true
}

func copyOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
