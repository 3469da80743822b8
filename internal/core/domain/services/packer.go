package services

import (
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/core/domain/model/shipment"
)

// Packer splits an order's shippable lines into proposed shipments.
//
// Applies must be a pure predicate. Pack returns handled == false to defer to
// the next packer; handled == true with an empty slice means the order needs
// zero shipments.
type Packer interface {
	Applies(o *order.Order, p *profile.Profile) bool
	Pack(o *order.Order, p *profile.Profile) (proposed []shipment.ProposedShipment, handled bool, err error)
}
