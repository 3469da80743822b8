package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/workflow/workflowtest"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateProfile struct{ mock.Mock }

func (m *MockCreateProfile) Handle(ctx context.Context, cmd commands.CreateProfileCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRepackOrder struct{ mock.Mock }

func (m *MockRepackOrder) Handle(ctx context.Context, cmd commands.RepackOrderCommand) (services.ReconcileResult, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(services.ReconcileResult)
	return result, args.Error(1)
}

type MockTransitionOrder struct{ mock.Mock }

func (m *MockTransitionOrder) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockRecalculate struct{ mock.Mock }

func (m *MockRecalculate) Handle(ctx context.Context, cmd commands.RecalculateOrderTotalCommand) (kernel.Money, error) {
	args := m.Called(ctx, cmd)
	total, _ := args.Get(0).(kernel.Money)
	return total, args.Error(1)
}

type MockSelectRate struct{ mock.Mock }

func (m *MockSelectRate) Handle(ctx context.Context, cmd commands.SelectShippingRateCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetShipments struct{ mock.Mock }

func (m *MockGetShipments) Handle(
	ctx context.Context,
	query queries.GetOrderShipmentsQuery,
) ([]queries.GetOrderShipmentsQueryResponse, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).([]queries.GetOrderShipmentsQueryResponse)
	return result, args.Error(1)
}

type fixture struct {
	echo       *echo.Echo
	logs       *bytes.Buffer
	profiles   *MockCreateProfile
	orders     *MockCreateOrder
	repack     *MockRepackOrder
	transition *MockTransitionOrder
	recalc     *MockRecalculate
	rate       *MockSelectRate
	shipments  *MockGetShipments
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		echo:       echo.New(),
		logs:       new(bytes.Buffer),
		profiles:   new(MockCreateProfile),
		orders:     new(MockCreateOrder),
		repack:     new(MockRepackOrder),
		transition: new(MockTransitionOrder),
		recalc:     new(MockRecalculate),
		rate:       new(MockSelectRate),
		shipments:  new(MockGetShipments),
	}
	server, err := httpadapter.NewServer(httpadapter.Handlers{
		CreateProfile:         f.profiles,
		CreateOrder:           f.orders,
		RepackOrder:           f.repack,
		TransitionOrder:       f.transition,
		RecalculateOrderTotal: f.recalc,
		SelectShippingRate:    f.rate,
		GetOrderShipments:     f.shipments,
	}, slog.New(slog.NewTextHandler(f.logs, nil)))
	require.NoError(t, err)
	server.RegisterRoutes(f.echo)
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	rec := newFixture(t).do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateProfile(t *testing.T) {
	t.Run("should create profile with the given id", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.profiles.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateProfileCommand) bool {
			return cmd.ProfileID().IsEqual(id) && cmd.FullName() == "Jane Doe" && cmd.Address().CountryCode == "US"
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/profiles", `{
			"id": "`+id.String()+`",
			"full_name": "Jane Doe",
			"address": {"country_code": "US", "locality": "Portland", "postal_code": "97201", "address_line": "1 Main St"}
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, id.String(), decode[map[string]string](t, rec)["id"])
		f.profiles.AssertExpectations(t)
	})

	t.Run("should reject missing name", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/profiles", `{"address": {"country_code": "US"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "full_name")
		f.profiles.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should map domain validation errors to 400", func(t *testing.T) {
		f := newFixture(t)
		f.profiles.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewValueIsInvalidError("country_code")).Once()

		rec := f.do(http.MethodPost, "/api/v1/profiles", `{"full_name": "Jane", "address": {"country_code": "usa"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		rec := newFixture(t).do(http.MethodPost, "/api/v1/profiles", `{"full_name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	t.Run("should pass lines with weights", func(t *testing.T) {
		f := newFixture(t)
		f.orders.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			lines := cmd.Lines()
			return cmd.StoreID() == "main" &&
				cmd.WorkflowID() == "order_fulfillment" &&
				len(lines) == 1 &&
				!lines[0].ID.IsZero() &&
				lines[0].Shippable &&
				lines[0].Weight != nil &&
				lines[0].Weight.Unit() == kernel.Gram &&
				lines[0].Quantity.Equal(decimal.NewFromInt(2))
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", `{
			"store_id": "main",
			"email": "buyer@example.com",
			"currency_code": "USD",
			"workflow": "order_fulfillment",
			"lines": [{
				"title": "Mug",
				"purchased_entity_id": "sku-1",
				"purchased_entity_type": "product_variation",
				"shippable": true,
				"weight": {"number": "350", "unit": "g"},
				"quantity": "2",
				"unit_price": "12.50"
			}]
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		f.orders.AssertExpectations(t)
	})

	t.Run("should reject unknown weight units", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{
			"store_id": "main", "currency_code": "USD",
			"lines": [{"title": "Mug", "weight": {"number": "1", "unit": "stone"}, "quantity": "1", "unit_price": "1"}]
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.orders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should map unknown workflow to 404", func(t *testing.T) {
		f := newFixture(t)
		f.orders.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("workflow", "nope")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"store_id": "main", "currency_code": "USD", "workflow": "nope"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRepackOrder(t *testing.T) {
	t.Run("should return reconciled shipments", func(t *testing.T) {
		f := newFixture(t)
		orderID, profileID := kernel.NewUUID(), kernel.NewUUID()
		typ, err := shipment.NewType(shipment.DefaultTypeID, "Default", shipment.WorkflowDefault)
		require.NoError(t, err)
		s, err := shipment.NewShipment(kernel.NewUUID(), orderID, typ, workflowtest.Shipment(t), time.Now())
		require.NoError(t, err)
		s.SetTitle("Shipment #1", time.Now())

		f.repack.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RepackOrderCommand) bool {
			return cmd.OrderID().IsEqual(orderID) && cmd.ProfileID().IsEqual(profileID)
		})).Return(services.ReconcileResult{
			Shipments: []*shipment.Shipment{s},
			Created:   []*shipment.Shipment{s},
		}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/repack",
			`{"profile_id": "`+profileID.String()+`"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		response := decode[httpadapter.RepackResponse](t, rec)
		require.Len(t, response.Shipments, 1)
		assert.Equal(t, "Shipment #1", response.Shipments[0].Title)
		assert.Equal(t, shipment.StateDraft, response.Shipments[0].State)
		require.Len(t, response.Created, 1)
		assert.True(t, response.Created[0].IsEqual(s.ID()))
		assert.Empty(t, response.Removed)
	})

	t.Run("should reject malformed order id", func(t *testing.T) {
		rec := newFixture(t).do(http.MethodPost, "/api/v1/orders/42/repack", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject missing profile", func(t *testing.T) {
		rec := newFixture(t).do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/repack", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should map missing order to 404", func(t *testing.T) {
		f := newFixture(t)
		f.repack.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", "x")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/repack",
			`{"profile_id": "`+kernel.NewUUID().String()+`"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTransitionOrder(t *testing.T) {
	t.Run("should return the new state", func(t *testing.T) {
		f := newFixture(t)
		f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
			return cmd.Transition() == "place"
		})).Return("fulfillment", nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/transitions", `{"transition": "place"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"state":"fulfillment"}`, rec.Body.String())
	})

	t.Run("should map illegal transitions to 409", func(t *testing.T) {
		f := newFixture(t)
		f.transition.On("Handle", mock.Anything, mock.Anything).
			Return("", errs.NewTransitionIsNotAllowedError("order_default", "place", "completed")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/transitions", `{"transition": "place"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "transition is not allowed")
	})
}

func TestRecalculateOrderTotal(t *testing.T) {
	f := newFixture(t)
	total, err := kernel.NewMoney(decimal.RequireFromString("27.50"), "USD")
	require.NoError(t, err)
	f.recalc.On("Handle", mock.Anything, mock.Anything).Return(total, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/recalculate", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[httpadapter.TotalResponse](t, rec)
	assert.True(t, response.Total.Number.Equal(decimal.RequireFromString("27.5")))
	assert.Equal(t, "USD", response.Total.Currency)
}

func TestGetOrderShipments(t *testing.T) {
	f := newFixture(t)
	orderID := kernel.NewUUID()
	amount, err := kernel.NewMoney(decimal.NewFromInt(5), "USD")
	require.NoError(t, err)
	weight, err := kernel.NewWeight(decimal.NewFromInt(2), kernel.Kilogram)
	require.NoError(t, err)
	f.shipments.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderShipmentsQuery) bool {
		return q.OrderID().IsEqual(orderID)
	})).Return([]queries.GetOrderShipmentsQueryResponse{
		{ID: kernel.NewUUID(), Position: 0, Type: "default", State: "ready", Title: "Shipment #1", Amount: &amount, Weight: weight},
		{ID: kernel.NewUUID(), Position: 1, Type: "default", State: "draft", Title: "Shipment #2", Weight: weight},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/shipments", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[[]httpadapter.Shipment](t, rec)
	require.Len(t, response, 2)
	require.NotNil(t, response[0].Amount)
	assert.Equal(t, "USD", response[0].Amount.Currency)
	assert.Nil(t, response[1].Amount)
	assert.Equal(t, "kg", response[1].Weight.Unit)
}

func TestSelectShippingRate(t *testing.T) {
	t.Run("should store the rate", func(t *testing.T) {
		f := newFixture(t)
		shipmentID := kernel.NewUUID()
		f.rate.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SelectShippingRateCommand) bool {
			return cmd.ShipmentID().IsEqual(shipmentID) &&
				cmd.MethodID() == "flat_rate" &&
				cmd.Amount().Amount().Equal(decimal.RequireFromString("7.25"))
		})).Return(nil).Once()

		rec := f.do(http.MethodPut, "/api/v1/shipments/"+shipmentID.String()+"/rate",
			`{"shipping_method": "flat_rate", "shipping_service": "default", "amount": {"number": "7.25", "currency_code": "USD"}}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.rate.AssertExpectations(t)
	})

	t.Run("should reject invalid currency", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/shipments/"+kernel.NewUUID().String()+"/rate",
			`{"shipping_method": "flat_rate", "amount": {"number": "1", "currency_code": "dollars"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.rate.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should hide internal errors and log them", func(t *testing.T) {
		f := newFixture(t)
		f.rate.On("Handle", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		rec := f.do(http.MethodPut, "/api/v1/shipments/"+kernel.NewUUID().String()+"/rate",
			`{"shipping_method": "flat_rate", "amount": {"number": "1", "currency_code": "USD"}}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Contains(t, f.logs.String(), "component=http_server")
		assert.Contains(t, f.logs.String(), "connection refused")
	})
}

func TestRequestValidation(t *testing.T) {
	t.Run("should reject bodies that break the schema before the handler runs", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/transitions", `{"transition": 7}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "transition")
		f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject decimals that are not numbers", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/shipments/"+kernel.NewUUID().String()+"/rate",
			`{"shipping_method": "flat_rate", "amount": {"number": "ten", "currency_code": "USD"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.rate.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject the nil uuid as path id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders/00000000-0000-0000-0000-000000000000/shipments", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "id")
		f.shipments.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestSwaggerDocs(t *testing.T) {
	rec := newFixture(t).do(http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/shipments/{id}/rate")
}
