// Package queries contains read operations for retrieving system state.
// Queries bypass the domain model and read the tables directly.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetOrderShipmentsQueryIsNotConstructed = errors.New(
		"GetOrderShipmentsQuery must be created via NewGetOrderShipmentsQuery constructor",
	)
)

// GetOrderShipmentsQuery lists the shipments of one order in position order.
//
// Example:
//
//	query, err := NewGetOrderShipmentsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	shipments, err := handler.Handle(ctx, query)
type GetOrderShipmentsQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderShipmentsQuery(orderID kernel.UUID) (GetOrderShipmentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderShipmentsQuery{}, err
	}
	return GetOrderShipmentsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderShipmentsQueryIsNotConstructed)
}

func (q GetOrderShipmentsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderShipmentsQueryResponse is the read model of a single shipment.
// Amount is nil until a shipping rate has been selected.
type GetOrderShipmentsQueryResponse struct {
	ID               kernel.UUID
	Position         int
	Type             string
	State            string
	Title            string
	ShippingMethodID string
	ShippingService  string
	Amount           *kernel.Money
	Weight           kernel.Weight
	TrackingCode     string
	ShippedAt        *time.Time
}
