package order

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is one order line. The purchased entity is nil when the catalog item
// was deleted or became unavailable after the order was placed; such lines
// are kept on the order but never shipped.
type Item struct {
	id              kernel.UUID
	title           string
	purchasedEntity *PurchasedEntity
	quantity        decimal.Decimal
	unitPrice       kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line.
//
// Business rules:
//   - id must be a valid UUID
//   - quantity must be greater than 0
//   - unit price must be a constructed Money
//   - purchasedEntity may be nil, but if present it must be valid
func NewItem(
	id kernel.UUID,
	title string,
	purchasedEntity *PurchasedEntity,
	quantity decimal.Decimal,
	unitPrice kernel.Money,
) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setPurchasedEntity(purchasedEntity),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}
	item.title = title

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Title() string {
	return i.title
}

// PurchasedEntity returns nil when the purchased entity is no longer available.
func (i *Item) PurchasedEntity() *PurchasedEntity {
	return i.purchasedEntity
}

func (i *Item) Quantity() decimal.Decimal {
	return i.quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice is unit price × quantity.
func (i *Item) TotalPrice() kernel.Money {
	return i.unitPrice.Multiply(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setPurchasedEntity(pe *PurchasedEntity) error {
	if pe != nil {
		if err := pe.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("purchased entity", err)
		}
	}
	i.purchasedEntity = pe
	return nil
}

func (i *Item) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("unit price", err)
	}
	i.unitPrice = price
	return nil
}
