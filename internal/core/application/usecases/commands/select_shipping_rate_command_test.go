package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectShippingRateCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSelectShippingRateCommand(id, "flat_rate", "default", usd(t, "5.00"))
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, "flat_rate", cmd.MethodID())
	assert.Equal(t, "default", cmd.Service())
	assert.Equal(t, "5.00 USD", cmd.Amount().String())
}

func TestNewSelectShippingRateCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewSelectShippingRateCommand(kernel.NewUUID(), "", "", kernel.Money{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "shipping_method")
	assert.Contains(t, err.Error(), "amount")
}
