package commands_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/workflow"
	"shipping/internal/core/domain/model/workflow/workflowtest"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment, position int) error {
	args := m.Called(ctx, s, position)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	s, _ := args.Get(0).([]*shipment.Shipment)
	return s, args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Add(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	messages, _ := args.Get(0).([]ports.OutboxMessage)
	return messages, args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var stockWorkflows = []string{
	order.WorkflowDefault,
	order.WorkflowFulfillment,
	order.WorkflowFulfillmentValidation,
	shipment.WorkflowDefault,
}

type workflowsStub struct {
	t testing.TB
}

func (w workflowsStub) Get(id string) (*workflow.Workflow, error) {
	if !slices.Contains(stockWorkflows, id) {
		return nil, errs.NewObjectNotFoundError("workflow", id)
	}
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
		CountryCode: "US", Locality: "Portland", PostalCode: "97201", AddressLine: "1 Main St",
	})
	require.NoError(t, err)
	return p
}

// newShippableOrder returns a draft order with one shippable line per entity id.
func newShippableOrder(t *testing.T, workflowID string, entityIDs ...string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "main", "jane@example.com", "USD", workflowtest.Get(t, workflowID))
	require.NoError(t, err)
	for _, id := range entityIDs {
		entity, err := order.NewPurchasedEntity(id, "commerce_product_variation", true, nil)
		require.NoError(t, err)
		line, err := order.NewItem(kernel.NewUUID(), "Line "+id, entity, decimal.NewFromInt(1), usd(t, "10"))
		require.NoError(t, err)
		require.NoError(t, o.AddItem(line))
	}
	return o
}

func newShipment(t *testing.T, o *order.Order) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), o.ID(), newTypes(t)[shipment.DefaultTypeID],
		workflowtest.Shipment(t), now)
	require.NoError(t, err)
	return s
}
