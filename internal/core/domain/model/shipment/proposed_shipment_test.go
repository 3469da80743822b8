package shipment_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, entityID string, qty int64) shipment.Item {
	t.Helper()
	item, err := shipment.NewItem(shipment.ItemDefinition{
		OrderItemID:         kernel.NewUUID(),
		PurchasedEntityID:   entityID,
		PurchasedEntityType: "commerce_product_variation",
		Quantity:            decimal.NewFromInt(qty),
	})
	require.NoError(t, err)
	return item
}

func TestNewProposedShipment(t *testing.T) {
	orderID := kernel.NewUUID()
	profileID := kernel.NewUUID()
	items := []shipment.Item{newItem(t, "10", 1), newItem(t, "11", 2)}

	t.Run("should return exactly the constructor input", func(t *testing.T) {
		p, err := shipment.NewProposedShipment(shipment.ProposedShipmentDefinition{
			Type:              "default",
			OrderID:           orderID,
			Items:             items,
			ShippingProfileID: &profileID,
			PackageTypeID:     "custom_box",
			CustomFields:      map[string]any{"field_gift": true},
		})

		require.NoError(t, err)
		assert.Equal(t, "default", p.Type())
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, items, p.Items())
		assert.True(t, p.ShippingProfileID().IsEqual(profileID))
		assert.Equal(t, "custom_box", p.PackageTypeID())
		assert.Equal(t, map[string]any{"field_gift": true}, p.CustomFields())
	})

	t.Run("should default optional values", func(t *testing.T) {
		p, err := shipment.NewProposedShipment(shipment.ProposedShipmentDefinition{
			Type: "default", OrderID: orderID, Items: items,
		})

		require.NoError(t, err)
		assert.Nil(t, p.ShippingProfileID())
		assert.Empty(t, p.PackageTypeID())
		assert.NotNil(t, p.CustomFields())
		assert.Empty(t, p.CustomFields())
	})

	t.Run("should hand out copies", func(t *testing.T) {
		fields := map[string]any{"field_gift": true}
		p, _ := shipment.NewProposedShipment(shipment.ProposedShipmentDefinition{
			Type: "default", OrderID: orderID, Items: items, CustomFields: fields,
		})

		fields["field_gift"] = false
		p.CustomFields()["field_gift"] = false
		p.Items()[0] = newItem(t, "99", 9)

		assert.Equal(t, true, p.CustomFields()["field_gift"])
		assert.Equal(t, "10", p.Items()[0].PurchasedEntityID())
	})

	for _, property := range []string{"type", "order_id", "items"} {
		t.Run("should fail without "+property, func(t *testing.T) {
			def := shipment.ProposedShipmentDefinition{Type: "default", OrderID: orderID, Items: items}
			switch property {
			case "type":
				def.Type = ""
			case "order_id":
				def.OrderID = kernel.UUID{}
			case "items":
				def.Items = nil
			}

			_, err := shipment.NewProposedShipment(def)

			require.ErrorIs(t, err, errs.ErrInvalidArgument)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), property)
		})
	}

	t.Run("should fail with an item not built by NewItem", func(t *testing.T) {
		_, err := shipment.NewProposedShipment(shipment.ProposedShipmentDefinition{
			Type: "default", OrderID: orderID, Items: []shipment.Item{items[0], {}},
		})

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "items")
	})
}
