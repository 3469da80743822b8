package kerneldto_test

import (
	"testing"

	"shipping/internal/adapters/out/postgres/kerneldto"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightDTO(t *testing.T) {
	assert.Nil(t, kerneldto.FromWeight(nil))

	var missing *kerneldto.WeightDTO
	w, err := missing.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, w)

	_, err = (&kerneldto.WeightDTO{Number: decimal.NewFromInt(1), Unit: "stone"}).ToDomain()
	require.Error(t, err)
}

func TestAdjustments(t *testing.T) {
	amount, err := kernel.NewMoney(decimal.RequireFromString("7.50"), "USD")
	require.NoError(t, err)
	a, err := kernel.NewAdjustment(kernel.AdjustmentTypeShipping, "Shipment #2", amount, "src")
	require.NoError(t, err)

	restored, err := kerneldto.ToAdjustments(kerneldto.FromAdjustments([]kernel.Adjustment{a}))

	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, kernel.AdjustmentTypeShipping, restored[0].Type())
	assert.Equal(t, "7.50 USD", restored[0].Amount().String())
	assert.Equal(t, "src", restored[0].SourceID())
}

func TestOptionalUUID(t *testing.T) {
	assert.Nil(t, kerneldto.FromOptionalUUID(&kernel.UUID{}))

	nilID := uuid.Nil
	id, err := kerneldto.ToOptionalUUID(&nilID)
	require.NoError(t, err)
	assert.Nil(t, id)
}
