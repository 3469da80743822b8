package services

import (
	"fmt"
	"slices"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// PackerManager runs its packers in registration order and returns the
// result of the first one that applies and handles the order. Results of
// several packers are never merged.
//
// Example usage:
//
//	manager := services.NewPackerManager(perWarehousePacker, services.NewDefaultPacker())
//	proposed, err := manager.Pack(o, destination)
type PackerManager struct {
	packers []Packer
}

func NewPackerManager(packers ...Packer) *PackerManager {
	m := &PackerManager{packers: make([]Packer, 0, len(packers))}
	for _, p := range packers {
		m.AddPacker(p)
	}
	return m
}

// AddPacker appends a packer; it will be tried after every packer added before it.
func (m *PackerManager) AddPacker(p Packer) {
	if p == nil {
		return
	}
	m.packers = append(m.packers, p)
}

// Packers returns the registered packers in evaluation order.
func (m *PackerManager) Packers() []Packer {
	return slices.Clone(m.packers)
}

// Pack returns the proposals of the first packer that applies and handles the
// order, or an empty slice when none does. A packer error aborts packing.
func (m *PackerManager) Pack(o *order.Order, p *profile.Profile) ([]shipment.ProposedShipment, error) {
	if err := o.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	if err := p.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("shipping_profile", err)
	}

	for idx, packer := range m.packers {
		if !packer.Applies(o, p) {
			continue
		}
		proposed, handled, err := packer.Pack(o, p)
		if err != nil {
			return nil, fmt.Errorf("packer %d (%T): %w", idx, packer, err)
		}
		if handled {
			if proposed == nil {
				proposed = []shipment.ProposedShipment{}
			}
			return proposed, nil
		}
	}
	return []shipment.ProposedShipment{}, nil
}
