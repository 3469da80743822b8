package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/core/domain/model/shipment"
)

// DefaultPacker puts every shippable line of an order into a single
// shipment of the default type. It always applies and always handles the order.
//
// Lines are skipped when the purchased entity is gone or not shippable.
// A shippable entity without weight data weighs 0 g.
type DefaultPacker struct{}

func NewDefaultPacker() DefaultPacker {
	return DefaultPacker{}
}

func (DefaultPacker) Applies(*order.Order, *profile.Profile) bool {
	return true
}

func (DefaultPacker) Pack(o *order.Order, p *profile.Profile) ([]shipment.ProposedShipment, bool, error) {
	items := make([]shipment.Item, 0, len(o.Items()))
	for _, line := range o.Items() {
		entity := line.PurchasedEntity()
		if entity == nil || !entity.IsShippable() {
			continue
		}

		weight, ok := entity.Weight()
		if !ok {
			weight = kernel.ZeroWeight(kernel.Gram)
		}
		weight = weight.Multiply(line.Quantity())
		declared := line.UnitPrice().Multiply(line.Quantity())

		item, err := shipment.NewItem(shipment.ItemDefinition{
			OrderItemID:         line.ID(),
			PurchasedEntityID:   entity.ID(),
			PurchasedEntityType: entity.Type(),
			Title:               line.Title(),
			Quantity:            line.Quantity(),
			Weight:              &weight,
			DeclaredValue:       &declared,
		})
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return []shipment.ProposedShipment{}, true, nil
	}

	profileID := p.ID()
	proposed, err := shipment.NewProposedShipment(shipment.ProposedShipmentDefinition{
		Type:              shipment.DefaultTypeID,
		OrderID:           o.ID(),
		Items:             items,
		ShippingProfileID: &profileID,
	})
	if err != nil {
		return nil, false, err
	}
	return []shipment.ProposedShipment{proposed}, true, nil
}
