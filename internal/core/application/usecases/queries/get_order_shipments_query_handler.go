package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderShipmentsQueryHandler reads shipments straight from the shipments
// table. An order without shipments, or an unknown order, yields an empty slice.
type GetOrderShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderShipmentsQueryHandler(db *gorm.DB) GetOrderShipmentsQueryHandler {
	return GetOrderShipmentsQueryHandler{db: db}
}

func (h GetOrderShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderShipmentsQuery,
) ([]GetOrderShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			position,
			type,
			state,
			title,
			shipping_method_id,
			shipping_service,
			amount_number,
			amount_currency,
			weight_number,
			weight_unit,
			tracking_code,
			shipped_at
		FROM shipments
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetOrderShipmentsQueryResponse, 0)
	for rows.Next() {
		var (
			s              GetOrderShipmentsQueryResponse
			id             uuid.UUID
			amountNumber   decimal.NullDecimal
			amountCurrency *string
			weightNumber   decimal.Decimal
			weightUnit     string
		)
		err = rows.Scan(
			&id,
			&s.Position,
			&s.Type,
			&s.State,
			&s.Title,
			&s.ShippingMethodID,
			&s.ShippingService,
			&amountNumber,
			&amountCurrency,
			&weightNumber,
			&weightUnit,
			&s.TrackingCode,
			&s.ShippedAt,
		)
		if err != nil {
			return nil, err
		}

		if s.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if amountNumber.Valid && amountCurrency != nil {
			amount, moneyErr := kernel.NewMoney(amountNumber.Decimal, *amountCurrency)
			if moneyErr != nil {
				return nil, moneyErr
			}
			s.Amount = &amount
		}
		if s.Weight, err = kernel.NewWeight(weightNumber, kernel.WeightUnit(weightUnit)); err != nil {
			return nil, err
		}
		if s.ShippedAt != nil {
			shippedAt := s.ShippedAt.UTC()
			s.ShippedAt = &shippedAt
		}
		shipments = append(shipments, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
