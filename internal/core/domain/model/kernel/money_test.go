package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(amount), "USD")
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should create money with valid currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("5.00"), "USD")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "USD", m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(5)))
		assert.Equal(t, "5.00 USD", m.String())
	})

	t.Run("should allow negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(-3), "EUR")

		require.NoError(t, err)
		assert.True(t, m.Amount().IsNegative())
	})

	t.Run("should fail without currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("should fail with malformed currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "usd")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "ISO 4217")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add same currency", func(t *testing.T) {
		sum, err := usd(t, "5.00").Add(usd(t, "7.50"))

		require.NoError(t, err)
		assert.True(t, sum.Equal(usd(t, "12.50")))
	})

	t.Run("should refuse to add different currencies", func(t *testing.T) {
		eur, _ := kernel.NewMoney(decimal.NewFromInt(1), "EUR")

		_, err := usd(t, "1").Add(eur)

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		total := usd(t, "2.25").Multiply(decimal.NewFromInt(3))

		assert.Equal(t, "6.75 USD", total.String())
	})

	t.Run("should compare amounts", func(t *testing.T) {
		cmp, err := usd(t, "5").Compare(usd(t, "7.5"))

		require.NoError(t, err)
		assert.Equal(t, -1, cmp)
	})
}

func TestMoney_Validate(t *testing.T) {
	var m kernel.Money

	require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
}
