package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/workflow"
	"shipping/internal/core/domain/model/workflow/workflowtest"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type workflowsStub struct {
	t testing.TB
}

func (w workflowsStub) Get(id string) (*workflow.Workflow, error) {
	return workflowtest.Get(w.t, id), nil
}

type typesStub map[string]shipment.Type

func (s typesStub) Get(id string) (shipment.Type, error) {
	t, ok := s[id]
	if !ok {
		return shipment.Type{}, errs.NewObjectNotFoundError("shipment type", id)
	}
	return t, nil
}

func newTypes(t *testing.T) typesStub {
	t.Helper()
	def, err := shipment.NewType(shipment.DefaultTypeID, "Default", shipment.WorkflowDefault)
	require.NoError(t, err)
	return typesStub{def.ID(): def}
}

func usd(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(amount), "USD")
	require.NoError(t, err)
	return m
}

func newProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.NewProfile(kernel.NewUUID(), "Jane Doe", profile.Address{
		CountryCode: "FR", Locality: "Paris", PostalCode: "75002", AddressLine: "38 rue du Sentier",
	})
	require.NoError(t, err)
	return p
}

func newOrder(t *testing.T, workflowID string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "main", "", "USD", workflowtest.Get(t, workflowID))
	require.NoError(t, err)
	return o
}

func addLine(t *testing.T, o *order.Order, entity *order.PurchasedEntity, qty int64, price string) *order.Item {
	t.Helper()
	line, err := order.NewItem(kernel.NewUUID(), "Line", entity, decimal.NewFromInt(qty), usd(t, price))
	require.NoError(t, err)
	require.NoError(t, o.AddItem(line))
	return line
}

func newShipment(t *testing.T, o *order.Order) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), o.ID(), newTypes(t)[shipment.DefaultTypeID],
		workflowtest.Shipment(t), now)
	require.NoError(t, err)
	return s
}

func proposal(t *testing.T, o *order.Order, entityIDs ...string) shipment.ProposedShipment {
	t.Helper()
	items := make([]shipment.Item, 0, len(entityIDs))
	for _, id := range entityIDs {
		item, err := shipment.NewItem(shipment.ItemDefinition{
			PurchasedEntityID: id, PurchasedEntityType: "commerce_product_variation", Quantity: decimal.NewFromInt(1),
		})
		require.NoError(t, err)
		items = append(items, item)
	}
	p, err := shipment.NewProposedShipment(shipment.ProposedShipmentDefinition{
		Type: shipment.DefaultTypeID, OrderID: o.ID(), Items: items,
	})
	require.NoError(t, err)
	return p
}
