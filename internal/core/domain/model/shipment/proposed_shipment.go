package shipment

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ProposedShipmentDefinition lists the properties of a proposed shipment.
// Type, OrderID and a non-empty Items list are required.
type ProposedShipmentDefinition struct {
	Type              string
	OrderID           kernel.UUID
	Items             []Item
	ShippingProfileID *kernel.UUID
	PackageTypeID     string
	CustomFields      map[string]any
}

// ProposedShipment is a packer's plan for one shipment. It is never persisted:
// reconciliation maps it onto a new or existing Shipment.
type ProposedShipment struct {
	shipmentType      string
	orderID           kernel.UUID
	items             []Item
	shippingProfileID *kernel.UUID
	packageTypeID     string
	customFields      map[string]any
}

// NewProposedShipment validates def. Items not built with NewItem are rejected.
func NewProposedShipment(def ProposedShipmentDefinition) (ProposedShipment, error) {
	var problems []error
	if def.Type == "" {
		problems = append(problems, errs.NewValueIsRequiredError("type"))
	}
	if def.OrderID.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("order_id"))
	}
	if len(def.Items) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("items"))
	}
	for idx, item := range def.Items {
		if err := item.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("element %d: %w", idx, err)))
			break
		}
	}
	if err := errors.Join(problems...); err != nil {
		return ProposedShipment{}, err
	}

	return ProposedShipment{
		shipmentType:      def.Type,
		orderID:           def.OrderID,
		items:             slices.Clone(def.Items),
		shippingProfileID: copyOf(def.ShippingProfileID),
		packageTypeID:     def.PackageTypeID,
		customFields:      cloneFields(def.CustomFields),
	}, nil
}

// Type returns the shipment type id.
func (p ProposedShipment) Type() string {
	return p.shipmentType
}

func (p ProposedShipment) OrderID() kernel.UUID {
	return p.orderID
}

func (p ProposedShipment) Items() []Item {
	return slices.Clone(p.items)
}

// ShippingProfileID is nil when the packer did not pick a profile.
func (p ProposedShipment) ShippingProfileID() *kernel.UUID {
	return copyOf(p.shippingProfileID)
}

// PackageTypeID is empty when the default package type should be used.
func (p ProposedShipment) PackageTypeID() string {
	return p.packageTypeID
}

func (p ProposedShipment) CustomFields() map[string]any {
	return cloneFields(p.customFields)
}

func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	return maps.Clone(fields)
}
