package order

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrPurchasedEntityIsNotConstructed = errors.New("PurchasedEntity must be created via NewPurchasedEntity constructor")

// PurchasedEntity is the catalog item an order line was bought for, e.g. a
// product variation. Only shippable entities end up in shipments; the weight
// is optional and absent weight data counts as zero.
type PurchasedEntity struct {
	id         string
	entityType string
	shippable  bool
	weight     *kernel.Weight

	guard guard.ConstructorGuard
}

// NewPurchasedEntity creates a purchased entity snapshot. weight may be nil.
func NewPurchasedEntity(id, entityType string, shippable bool, weight *kernel.Weight) (*PurchasedEntity, error) {
	var problems []error
	if id == "" {
		problems = append(problems, errs.NewValueIsRequiredError("purchased_entity_id"))
	}
	if entityType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("purchased_entity_type"))
	}
	if weight != nil {
		if err := weight.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("weight", err))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	pe := &PurchasedEntity{
		id:         id,
		entityType: entityType,
		shippable:  shippable,
		guard:      guard.NewConstructorGuard(),
	}
	if weight != nil {
		w := *weight
		pe.weight = &w
	}
	return pe, nil
}

func (p *PurchasedEntity) Validate() error {
	if p == nil {
		return ErrPurchasedEntityIsNotConstructed
	}
	return p.guard.Validate(ErrPurchasedEntityIsNotConstructed)
}

func (p *PurchasedEntity) ID() string {
	return p.id
}

// Type returns the entity type tag, e.g. "commerce_product_variation".
func (p *PurchasedEntity) Type() string {
	return p.entityType
}

func (p *PurchasedEntity) IsShippable() bool {
	return p.shippable
}

// Weight returns the unit weight and whether the entity carries weight data.
func (p *PurchasedEntity) Weight() (kernel.Weight, bool) {
	if p.weight == nil {
		return kernel.Weight{}, false
	}
	return *p.weight, true
}
