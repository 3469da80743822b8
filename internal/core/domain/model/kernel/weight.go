package kernel

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// WeightUnit is the unit a Weight is expressed in.
type WeightUnit string

const (
	Gram     WeightUnit = "g"
	Kilogram WeightUnit = "kg"
	Ounce    WeightUnit = "oz"
	Pound    WeightUnit = "lb"
)

var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight constructor")

// gramsPerUnit holds the conversion factor of every supported unit to grams.
var gramsPerUnit = map[WeightUnit]decimal.Decimal{
	Gram:     decimal.NewFromInt(1),
	Kilogram: decimal.NewFromInt(1000),
	Ounce:    decimal.RequireFromString("28.349523125"),
	Pound:    decimal.RequireFromString("453.59237"),
}

// Validate rejects units without a known conversion factor.
func (u WeightUnit) Validate() error {
	if _, ok := gramsPerUnit[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("weight unit", fmt.Errorf("%q is not a supported unit", string(u)))
	}
	return nil
}

// Weight is a non-negative physical measurement. Sums across units are
// expressed in the unit of the left operand.
type Weight struct {
	number decimal.Decimal
	unit   WeightUnit

	guard guard.ConstructorGuard
}

func NewWeight(number decimal.Decimal, unit WeightUnit) (Weight, error) {
	if err := unit.Validate(); err != nil {
		return Weight{}, err
	}
	if number.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", number.String(), 0, "unbounded")
	}
	return Weight{number: number, unit: unit, guard: guard.NewConstructorGuard()}, nil
}

// ZeroWeight returns 0 of the given unit; unknown units fall back to grams.
func ZeroWeight(unit WeightUnit) Weight {
	if unit.Validate() != nil {
		unit = Gram
	}
	return Weight{number: decimal.Zero, unit: unit, guard: guard.NewConstructorGuard()}
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w Weight) Number() decimal.Decimal {
	return w.number
}

func (w Weight) Unit() WeightUnit {
	return w.unit
}

// Convert expresses w in another unit.
func (w Weight) Convert(unit WeightUnit) (Weight, error) {
	if err := unit.Validate(); err != nil {
		return Weight{}, err
	}
	if unit == w.unit {
		return w, nil
	}
	grams := w.number.Mul(gramsPerUnit[w.unit])
	return Weight{number: grams.Div(gramsPerUnit[unit]), unit: unit, guard: w.guard}, nil
}

// Add returns w + other in w's unit.
func (w Weight) Add(other Weight) (Weight, error) {
	converted, err := other.Convert(w.unit)
	if err != nil {
		return Weight{}, err
	}
	return Weight{number: w.number.Add(converted.number), unit: w.unit, guard: w.guard}, nil
}

// Multiply returns w × factor.
func (w Weight) Multiply(factor decimal.Decimal) Weight {
	return Weight{number: w.number.Mul(factor), unit: w.unit, guard: w.guard}
}

// Equal compares after converting other into w's unit.
func (w Weight) Equal(other Weight) bool {
	converted, err := other.Convert(w.unit)
	if err != nil {
		return false
	}
	return w.number.Equal(converted.number)
}

func (w Weight) String() string {
	return w.number.String() + " " + string(w.unit)
}
