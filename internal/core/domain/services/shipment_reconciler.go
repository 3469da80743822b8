package services

import (
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ReconcileResult describes the outcome of a reconciliation. Shipments is the
// new ordered shipment set of the order; Created and Updated partition it.
// Removed lists the existing shipments no proposal maps to anymore.
type ReconcileResult struct {
	Shipments []*shipment.Shipment
	Created   []*shipment.Shipment
	Updated   []*shipment.Shipment
	Removed   []*shipment.Shipment
}

// ShipmentReconciler maps proposed shipments onto the persisted shipments of
// an order by position: slot i reuses existing[i] when there is one and
// creates a new shipment otherwise. Matching ignores content, so a packer
// that reorders its output will repopulate shipments in place.
type ShipmentReconciler struct {
	types     ports.ShipmentTypeRegistry
	workflows ports.WorkflowRegistry
	newID     func() kernel.UUID
}

func NewShipmentReconciler(types ports.ShipmentTypeRegistry, workflows ports.WorkflowRegistry) *ShipmentReconciler {
	return &ShipmentReconciler{types: types, workflows: workflows, newID: kernel.NewUUID}
}

// Reconcile applies proposed onto existing and assigns the selected profile
// to every resulting shipment as the last write. Nothing is persisted.
func (r *ShipmentReconciler) Reconcile(
	existing []*shipment.Shipment,
	proposed []shipment.ProposedShipment,
	p *profile.Profile,
	now time.Time,
) (ReconcileResult, error) {
	if err := p.Validate(); err != nil {
		return ReconcileResult{}, errs.NewValueIsRequiredErrorWithCause("shipping_profile", err)
	}

	result := ReconcileResult{
		Shipments: make([]*shipment.Shipment, 0, len(proposed)),
		Created:   make([]*shipment.Shipment, 0),
		Updated:   make([]*shipment.Shipment, 0),
		Removed:   make([]*shipment.Shipment, 0),
	}

	for i, proposal := range proposed {
		var (
			s   *shipment.Shipment
			err error
		)
		if i < len(existing) {
			s = existing[i]
			result.Updated = append(result.Updated, s)
		} else {
			if s, err = r.create(proposal, i, now); err != nil {
				return ReconcileResult{}, err
			}
			result.Created = append(result.Created, s)
		}

		if err = s.PopulateFromProposedShipment(proposal, now); err != nil {
			return ReconcileResult{}, fmt.Errorf("slot %d: %w", i, err)
		}
		result.Shipments = append(result.Shipments, s)
	}

	for _, s := range result.Shipments {
		if err := s.SetShippingProfileID(p.ID(), now); err != nil {
			return ReconcileResult{}, err
		}
	}

	if len(existing) > len(proposed) {
		result.Removed = append(result.Removed, existing[len(proposed):]...)
	}
	return result, nil
}

func (r *ShipmentReconciler) create(proposal shipment.ProposedShipment, slot int, now time.Time) (*shipment.Shipment, error) {
	t, err := r.types.Get(proposal.Type())
	if err != nil {
		return nil, err
	}
	wf, err := r.workflows.Get(t.WorkflowID())
	if err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(r.newID(), proposal.OrderID(), t, wf, now)
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", slot, err)
	}
	s.SetTitle(fmt.Sprintf("Shipment #%d", slot+1), now)
	return s, nil
}
