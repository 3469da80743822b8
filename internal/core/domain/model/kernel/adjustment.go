package kernel

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// AdjustmentType classifies a price adjustment.
type AdjustmentType string

const (
	AdjustmentTypeShipping  AdjustmentType = "shipping"
	AdjustmentTypePromotion AdjustmentType = "promotion"
	AdjustmentTypeTax       AdjustmentType = "tax"
	AdjustmentTypeCustom    AdjustmentType = "custom"
)

var ErrAdjustmentIsNotConstructed = errors.New("Adjustment must be created via NewAdjustment constructor")

// Adjustment modifies an order or shipment total. SourceID points at whatever
// produced it (a shipment id for shipping adjustments) and may be empty.
type Adjustment struct {
	adjustmentType AdjustmentType
	label          string
	amount         Money
	sourceID       string

	guard guard.ConstructorGuard
}

func NewAdjustment(adjustmentType AdjustmentType, label string, amount Money, sourceID string) (Adjustment, error) {
	var problems []error
	if adjustmentType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("adjustment type"))
	}
	if label == "" {
		problems = append(problems, errs.NewValueIsRequiredError("adjustment label"))
	}
	if err := amount.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("adjustment amount", err))
	}
	if err := errors.Join(problems...); err != nil {
		return Adjustment{}, err
	}

	return Adjustment{
		adjustmentType: adjustmentType,
		label:          label,
		amount:         amount,
		sourceID:       sourceID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (a Adjustment) Validate() error {
	return a.guard.Validate(ErrAdjustmentIsNotConstructed)
}

func (a Adjustment) Type() AdjustmentType {
	return a.adjustmentType
}

func (a Adjustment) Label() string {
	return a.label
}

func (a Adjustment) Amount() Money {
	return a.amount
}

func (a Adjustment) SourceID() string {
	return a.sourceID
}
