package order

// Order workflow identifiers.
const (
	WorkflowDefault               = "order_default"
	WorkflowFulfillment           = "order_fulfillment"
	WorkflowFulfillmentValidation = "order_fulfillment_validation"
)

// Order states shared by the order workflows.
const (
	StateDraft       = "draft"
	StateValidation  = "validation"
	StateFulfillment = "fulfillment"
	StateCompleted   = "completed"
	StateCanceled    = "canceled"
)

// Order transitions.
const (
	TransitionPlace    = "place"
	TransitionValidate = "validate"
	TransitionFulfill  = "fulfill"
	TransitionCancel   = "cancel"
)
