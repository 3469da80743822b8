// Package shipmentrepo persists shipments. Each row keeps the position of the
// shipment within its order so that reconciliation can map proposals back
// onto the same slots.
package shipmentrepo

import (
	"time"

	"shipping/internal/adapters/out/postgres/kerneldto"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for shipments. Weight is
// derived from the items on load and only stored for read models.
type ShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index:idx_shipments_order_position,priority:1"`
	Position          int       `gorm:"not null;index:idx_shipments_order_position,priority:2"`
	Type              string    `gorm:"not null"`
	State             string    `gorm:"index;not null"`
	Title             string
	PackageTypeID     string
	ShippingMethodID  string
	ShippingService   string
	ShippingProfileID *uuid.UUID `gorm:"type:uuid"`

	AmountNumber   decimal.NullDecimal `gorm:"type:numeric(19,4)"`
	AmountCurrency *string             `gorm:"type:char(3)"`
	WeightNumber   decimal.Decimal     `gorm:"type:numeric(19,6);not null"`
	WeightUnit     string              `gorm:"not null"`
	TrackingCode   string

	Items       []ItemDTO                 `gorm:"type:jsonb;serializer:json"`
	Adjustments []kerneldto.AdjustmentDTO `gorm:"type:jsonb;serializer:json"`
	Data        map[string]any            `gorm:"type:jsonb;serializer:json"`
	Fields      map[string]any            `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time
	ChangedAt time.Time
	ShippedAt *time.Time
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type ItemDTO struct {
	OrderItemID         uuid.UUID            `json:"order_item_id"`
	PurchasedEntityID   string               `json:"purchased_entity_id"`
	PurchasedEntityType string               `json:"purchased_entity_type"`
	Title               string               `json:"title"`
	Quantity            decimal.Decimal      `json:"quantity"`
	Weight              *kerneldto.WeightDTO `json:"weight,omitempty"`
	DeclaredValue       *kerneldto.MoneyDTO  `json:"declared_value,omitempty"`
}

func fromDomain(s *shipment.Shipment, position int) ShipmentDTO {
	items := make([]ItemDTO, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, ItemDTO{
			OrderItemID:         item.OrderItemID().Bytes(),
			PurchasedEntityID:   item.PurchasedEntityID(),
			PurchasedEntityType: item.PurchasedEntityType(),
			Title:               item.Title(),
			Quantity:            item.Quantity(),
			Weight:              kerneldto.FromWeight(item.Weight()),
			DeclaredValue:       kerneldto.FromMoney(item.DeclaredValue()),
		})
	}

	dto := ShipmentDTO{
		ID:                s.ID().Bytes(),
		OrderID:           s.OrderID().Bytes(),
		Position:          position,
		Type:              s.Type().ID(),
		State:             s.State(),
		Title:             s.Title(),
		PackageTypeID:     s.PackageTypeID(),
		ShippingMethodID:  s.ShippingMethodID(),
		ShippingService:   s.ShippingService(),
		ShippingProfileID: kerneldto.FromOptionalUUID(s.ShippingProfileID()),
		WeightNumber:      s.Weight().Number(),
		WeightUnit:        string(s.Weight().Unit()),
		TrackingCode:      s.TrackingCode(),
		Items:             items,
		Adjustments:       kerneldto.FromAdjustments(s.Adjustments()),
		Data:              s.AllData(),
		Fields:            s.Fields(),
		CreatedAt:         s.CreatedAt(),
		ChangedAt:         s.ChangedAt(),
		ShippedAt:         s.ShippedAt(),
	}
	if amount := s.Amount(); amount != nil {
		currency := amount.Currency()
		dto.AmountNumber = decimal.NewNullDecimal(amount.Amount())
		dto.AmountCurrency = &currency
	}
	return dto
}

func toDomain(dto ShipmentDTO, types ports.ShipmentTypeRegistry) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	t, err := types.Get(dto.Type)
	if err != nil {
		return nil, err
	}
	profileID, err := kerneldto.ToOptionalUUID(dto.ShippingProfileID)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var amount *kernel.Money
	if dto.AmountNumber.Valid && dto.AmountCurrency != nil {
		if amount, err = (&kerneldto.MoneyDTO{Amount: dto.AmountNumber.Decimal, Currency: *dto.AmountCurrency}).ToDomain(); err != nil {
			return nil, err
		}
	}

	adjustments, err := kerneldto.ToAdjustments(dto.Adjustments)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(shipment.Snapshot{
		ID:                id,
		OrderID:           orderID,
		Type:              t,
		Title:             dto.Title,
		PackageTypeID:     dto.PackageTypeID,
		ShippingMethodID:  dto.ShippingMethodID,
		ShippingService:   dto.ShippingService,
		ShippingProfileID: profileID,
		Items:             items,
		Amount:            amount,
		Adjustments:       adjustments,
		TrackingCode:      dto.TrackingCode,
		State:             dto.State,
		Data:              dto.Data,
		Fields:            dto.Fields,
		CreatedAt:         dto.CreatedAt.UTC(),
		ChangedAt:         dto.ChangedAt.UTC(),
		ShippedAt:         dto.ShippedAt,
	})
}

func itemToDomain(dto ItemDTO) (shipment.Item, error) {
	weight, err := dto.Weight.ToDomain()
	if err != nil {
		return shipment.Item{}, err
	}
	declared, err := dto.DeclaredValue.ToDomain()
	if err != nil {
		return shipment.Item{}, err
	}

	def := shipment.ItemDefinition{
		PurchasedEntityID:   dto.PurchasedEntityID,
		PurchasedEntityType: dto.PurchasedEntityType,
		Title:               dto.Title,
		Quantity:            dto.Quantity,
		Weight:              weight,
		DeclaredValue:       declared,
	}
	if dto.OrderItemID != uuid.Nil {
		if def.OrderItemID, err = kernel.UUIDFromBytes(dto.OrderItemID[:]); err != nil {
			return shipment.Item{}, err
		}
	}
	return shipment.NewItem(def)
}
