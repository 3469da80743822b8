package ports

import (
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/workflow"
)

// WorkflowRegistry resolves workflow definitions by id.
// Unknown ids fail with errs.ObjectNotFoundError.
type WorkflowRegistry interface {
	Get(id string) (*workflow.Workflow, error)
}

// ShipmentTypeRegistry resolves shipment types by id.
// Unknown ids fail with errs.ObjectNotFoundError.
type ShipmentTypeRegistry interface {
	Get(id string) (shipment.Type, error)
}
