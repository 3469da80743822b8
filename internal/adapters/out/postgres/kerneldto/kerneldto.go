// Package kerneldto maps kernel value objects to the JSON shapes the
// repositories store inside jsonb columns.
package kerneldto

import (
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WeightDTO struct {
	Number decimal.Decimal `json:"number"`
	Unit   string          `json:"unit"`
}

type MoneyDTO struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type AdjustmentDTO struct {
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Amount   MoneyDTO `json:"amount"`
	SourceID string   `json:"source_id,omitempty"`
}

// FromWeight returns nil for a nil weight.
func FromWeight(w *kernel.Weight) *WeightDTO {
	if w == nil {
		return nil
	}
	return &WeightDTO{Number: w.Number(), Unit: string(w.Unit())}
}

func (d *WeightDTO) ToDomain() (*kernel.Weight, error) {
	if d == nil {
		return nil, nil
	}
	w, err := kernel.NewWeight(d.Number, kernel.WeightUnit(d.Unit))
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// FromMoney returns nil for a nil amount.
func FromMoney(m *kernel.Money) *MoneyDTO {
	if m == nil {
		return nil
	}
	return &MoneyDTO{Amount: m.Amount(), Currency: m.Currency()}
}

func (d *MoneyDTO) ToDomain() (*kernel.Money, error) {
	if d == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(d.Amount, d.Currency)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func FromAdjustments(adjustments []kernel.Adjustment) []AdjustmentDTO {
	dtos := make([]AdjustmentDTO, 0, len(adjustments))
	for _, a := range adjustments {
		amount := a.Amount()
		dtos = append(dtos, AdjustmentDTO{
			Type:     string(a.Type()),
			Label:    a.Label(),
			Amount:   *FromMoney(&amount),
			SourceID: a.SourceID(),
		})
	}
	return dtos
}

func ToAdjustments(dtos []AdjustmentDTO) ([]kernel.Adjustment, error) {
	adjustments := make([]kernel.Adjustment, 0, len(dtos))
	for _, dto := range dtos {
		amount, err := dto.Amount.ToDomain()
		if err != nil {
			return nil, err
		}
		a, err := kernel.NewAdjustment(kernel.AdjustmentType(dto.Type), dto.Label, *amount, dto.SourceID)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, nil
}

// FromOptionalUUID maps the zero kernel UUID to nil.
func FromOptionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil || id.IsZero() {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// ToOptionalUUID maps nil and uuid.Nil to nil.
func ToOptionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil || *raw == uuid.Nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
