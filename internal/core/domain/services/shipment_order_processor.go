package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
)

// singleShipmentLabel labels the shipping adjustment of single-shipment orders.
const singleShipmentLabel = "Shipping"

// ShipmentOrderProcessor adds one shipping adjustment per shipment to the
// order. Shipments without a selected rate contribute nothing, and shipments
// are never modified.
type ShipmentOrderProcessor struct{}

func NewShipmentOrderProcessor() ShipmentOrderProcessor {
	return ShipmentOrderProcessor{}
}

func (ShipmentOrderProcessor) Process(o *order.Order, shipments []*shipment.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	single := len(shipments) == 1
	for _, s := range shipments {
		amount := s.Amount()
		// No rate selected yet. An adjustment requires an amount, so such a
		// shipment contributes nothing instead of failing the recalculation.
		if amount == nil {
			continue
		}

		label := s.Title()
		if single || label == "" {
			label = singleShipmentLabel
		}

		adjustment, err := kernel.NewAdjustment(kernel.AdjustmentTypeShipping, label, *amount, s.ID().String())
		if err != nil {
			return err
		}
		if err = o.AddAdjustment(adjustment); err != nil {
			return err
		}
	}
	return nil
}
