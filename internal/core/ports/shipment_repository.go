package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments.
type ShipmentRepository interface {
	// Add persists a newly created shipment at the given position of its order.
	Add(ctx context.Context, aggregate *shipment.Shipment, position int) error

	// Update saves an existing shipment. Its position never changes.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Delete removes a shipment.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllByOrder returns the shipments of an order ordered by position.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error)
}
