package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Money struct {
	Number   decimal.Decimal `json:"number"`
	Currency string          `json:"currency_code"`
}

type Weight struct {
	Number decimal.Decimal `json:"number"`
	Unit   string          `json:"unit"`
}

type Address struct {
	CountryCode string `json:"country_code"`
	Locality    string `json:"locality"`
	PostalCode  string `json:"postal_code"`
	AddressLine string `json:"address_line"`
}

type NewProfile struct {
	ID       *kernel.UUID `json:"id,omitempty"`
	FullName string       `json:"full_name"`
	Address  Address      `json:"address"`
}

type NewOrderLine struct {
	ID                  *kernel.UUID    `json:"id,omitempty"`
	Title               string          `json:"title"`
	PurchasedEntityID   string          `json:"purchased_entity_id"`
	PurchasedEntityType string          `json:"purchased_entity_type"`
	Shippable           bool            `json:"shippable"`
	Weight              *Weight         `json:"weight,omitempty"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
}

type NewOrder struct {
	ID         *kernel.UUID   `json:"id,omitempty"`
	StoreID    string         `json:"store_id"`
	Email      string         `json:"email"`
	Currency   string         `json:"currency_code"`
	WorkflowID string         `json:"workflow,omitempty"`
	Lines      []NewOrderLine `json:"lines"`
}

type Created struct {
	ID kernel.UUID `json:"id"`
}

type RepackRequest struct {
	ProfileID kernel.UUID `json:"profile_id"`
}

type RepackResponse struct {
	Shipments []ShipmentSummary `json:"shipments"`
	Created   []kernel.UUID     `json:"created"`
	Updated   []kernel.UUID     `json:"updated"`
	Removed   []kernel.UUID     `json:"removed"`
}

type ShipmentSummary struct {
	ID     kernel.UUID `json:"id"`
	Title  string      `json:"title"`
	Type   string      `json:"type"`
	State  string      `json:"state"`
	Weight Weight      `json:"weight"`
	Items  int         `json:"items"`
}

type TransitionRequest struct {
	Transition string `json:"transition"`
}

type TransitionResponse struct {
	State string `json:"state"`
}

type TotalResponse struct {
	Total Money `json:"total"`
}

type SelectRateRequest struct {
	ShippingMethod  string `json:"shipping_method"`
	ShippingService string `json:"shipping_service"`
	Amount          Money  `json:"amount"`
}

type Shipment struct {
	ID               kernel.UUID `json:"id"`
	Position         int         `json:"position"`
	Type             string      `json:"type"`
	State            string      `json:"state"`
	Title            string      `json:"title"`
	ShippingMethodID string      `json:"shipping_method,omitempty"`
	ShippingService  string      `json:"shipping_service,omitempty"`
	Amount           *Money      `json:"amount,omitempty"`
	Weight           Weight      `json:"weight"`
	TrackingCode     string      `json:"tracking_code,omitempty"`
	ShippedAt        *time.Time  `json:"shipped_at,omitempty"`
}

func toMoney(m kernel.Money) Money {
	return Money{Number: m.Amount(), Currency: m.Currency()}
}

func toWeight(w kernel.Weight) Weight {
	return Weight{Number: w.Number(), Unit: string(w.Unit())}
}

func ids(shipments []*shipment.Shipment) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, s.ID())
	}
	return out
}

func toShipmentSummary(s *shipment.Shipment) ShipmentSummary {
	return ShipmentSummary{
		ID:     s.ID(),
		Title:  s.Title(),
		Type:   s.Type().ID(),
		State:  s.State(),
		Weight: toWeight(s.Weight()),
		Items:  len(s.Items()),
	}
}

func toShipment(r queries.GetOrderShipmentsQueryResponse) Shipment {
	out := Shipment{
		ID:               r.ID,
		Position:         r.Position,
		Type:             r.Type,
		State:            r.State,
		Title:            r.Title,
		ShippingMethodID: r.ShippingMethodID,
		ShippingService:  r.ShippingService,
		Weight:           toWeight(r.Weight),
		TrackingCode:     r.TrackingCode,
		ShippedAt:        r.ShippedAt,
	}
	if r.Amount != nil {
		amount := toMoney(*r.Amount)
		out.Amount = &amount
	}
	return out
}
