// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"shipping/internal/adapters/out/postgres/kerneldto"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines, shipment references and adjustments are owned by the order and are
// stored as jsonb columns of the order row.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     string    `gorm:"not null"`
	Email       string
	Currency    string                    `gorm:"type:char(3);not null"`
	WorkflowID  string                    `gorm:"not null"`
	State       string                    `gorm:"index;not null"`
	Items       []ItemDTO                 `gorm:"type:jsonb;serializer:json"`
	ShipmentIDs []uuid.UUID               `gorm:"type:jsonb;serializer:json"`
	Adjustments []kerneldto.AdjustmentDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. Prices are in the order currency.
type ItemDTO struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	PurchasedEntity *PurchasedEntityDTO `json:"purchased_entity,omitempty"`
	Quantity        decimal.Decimal     `json:"quantity"`
	UnitPrice       decimal.Decimal     `json:"unit_price"`
}

type PurchasedEntityDTO struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Shippable bool                 `json:"shippable"`
	Weight    *kerneldto.WeightDTO `json:"weight,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		dto := ItemDTO{
			ID:        item.ID().Bytes(),
			Title:     item.Title(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		}
		if pe := item.PurchasedEntity(); pe != nil {
			dto.PurchasedEntity = &PurchasedEntityDTO{
				ID:        pe.ID(),
				Type:      pe.Type(),
				Shippable: pe.IsShippable(),
			}
			if w, ok := pe.Weight(); ok {
				dto.PurchasedEntity.Weight = kerneldto.FromWeight(&w)
			}
		}
		items = append(items, dto)
	}

	shipmentIDs := make([]uuid.UUID, 0, len(o.Shipments()))
	for _, id := range o.Shipments() {
		shipmentIDs = append(shipmentIDs, id.Bytes())
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		StoreID:     o.StoreID(),
		Email:       o.Email(),
		Currency:    o.Currency(),
		WorkflowID:  o.WorkflowID(),
		State:       o.State(),
		Items:       items,
		ShipmentIDs: shipmentIDs,
		Adjustments: kerneldto.FromAdjustments(o.Adjustments()),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO, dto.Currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shipmentIDs := make([]kernel.UUID, 0, len(dto.ShipmentIDs))
	for _, raw := range dto.ShipmentIDs {
		shipmentID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		shipmentIDs = append(shipmentIDs, shipmentID)
	}

	adjustments, err := kerneldto.ToAdjustments(dto.Adjustments)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.StoreID, dto.Email, dto.Currency, dto.WorkflowID, dto.State,
		items, shipmentIDs, adjustments)
}

func itemToDomain(dto ItemDTO, currency string) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return nil, err
	}

	var entity *order.PurchasedEntity
	if pe := dto.PurchasedEntity; pe != nil {
		weight, weightErr := pe.Weight.ToDomain()
		if weightErr != nil {
			return nil, weightErr
		}
		if entity, err = order.NewPurchasedEntity(pe.ID, pe.Type, pe.Shippable, weight); err != nil {
			return nil, err
		}
	}

	return order.NewItem(id, dto.Title, entity, dto.Quantity, price)
}
