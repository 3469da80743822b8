package shipment

// WorkflowDefault is the workflow of the default shipment type.
const WorkflowDefault = "shipment_default"

// Shipment states of shipment_default.
const (
	StateDraft    = "draft"
	StateReady    = "ready"
	StateShipped  = "shipped"
	StateCanceled = "canceled"
)

// Shipment transitions of shipment_default.
const (
	TransitionFinalize = "finalize"
	TransitionShip     = "ship"
	TransitionCancel   = "cancel"
)

// Base fields that accept free values from a proposed shipment.
const (
	FieldTitle        = "title"
	FieldTrackingCode = "tracking_code"
)

func isBaseField(name string) bool {
	switch name {
	case FieldTitle, FieldTrackingCode, "order_id", "items", "package_type", "shipping_method",
		"shipping_service", "shipping_profile", "weight", "amount", "adjustments", "state", "data",
		"created", "changed", "shipped":
		return true
	}
	return false
}
