// Package http exposes the shipping use cases over a JSON API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"shipping/api"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CreateProfileHandler interface {
	Handle(ctx context.Context, cmd commands.CreateProfileCommand) error
}

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

type RepackOrderHandler interface {
	Handle(ctx context.Context, cmd commands.RepackOrderCommand) (services.ReconcileResult, error)
}

type TransitionOrderHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (string, error)
}

type RecalculateOrderTotalHandler interface {
	Handle(ctx context.Context, cmd commands.RecalculateOrderTotalCommand) (kernel.Money, error)
}

type SelectShippingRateHandler interface {
	Handle(ctx context.Context, cmd commands.SelectShippingRateCommand) error
}

type GetOrderShipmentsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderShipmentsQuery) ([]queries.GetOrderShipmentsQueryResponse, error)
}

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateProfile         CreateProfileHandler
	CreateOrder           CreateOrderHandler
	RepackOrder           RepackOrderHandler
	TransitionOrder       TransitionOrderHandler
	RecalculateOrderTotal RecalculateOrderTotalHandler
	SelectShippingRate    SelectShippingRateHandler
	GetOrderShipments     GetOrderShipmentsHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	validator *requestValidator
	logger    *slog.Logger
}

// NewServer loads the embedded OpenAPI document that requests are validated
// against.
func NewServer(handlers Handlers, logger *slog.Logger) (*Server, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	return &Server{
		handlers:  handlers,
		validator: validator,
		logger:    logger.With("component", "http_server"),
	}, nil
}

// RegisterRoutes mounts the API under /api/v1, the health check at /health
// and the API docs under /swagger.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", s.validator.Middleware)
	v1.POST("/profiles", s.CreateProfile)
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:id/repack", s.RepackOrder)
	v1.POST("/orders/:id/transitions", s.TransitionOrder)
	v1.POST("/orders/:id/recalculate", s.RecalculateOrderTotal)
	v1.GET("/orders/:id/shipments", s.GetOrderShipments)
	v1.PUT("/shipments/:id/rate", s.SelectShippingRate)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateProfile handles POST /api/v1/profiles.
func (s *Server) CreateProfile(ctx echo.Context) error {
	var body NewProfile
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := newOrGiven(body.ID)
	cmd, err := commands.NewCreateProfileCommand(id, body.FullName, profile.Address{
		CountryCode: body.Address.CountryCode,
		Locality:    body.Address.Locality,
		PostalCode:  body.Address.PostalCode,
		AddressLine: body.Address.AddressLine,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(body.Lines))
	for _, l := range body.Lines {
		line := commands.OrderLine{
			ID:                  newOrGiven(l.ID),
			Title:               l.Title,
			PurchasedEntityID:   l.PurchasedEntityID,
			PurchasedEntityType: l.PurchasedEntityType,
			Shippable:           l.Shippable,
			Quantity:            l.Quantity,
			UnitPrice:           l.UnitPrice,
		}
		if l.Weight != nil {
			w, err := kernel.NewWeight(l.Weight.Number, kernel.WeightUnit(l.Weight.Unit))
			if err != nil {
				return s.fail(ctx, err)
			}
			line.Weight = &w
		}
		lines = append(lines, line)
	}

	id := newOrGiven(body.ID)
	cmd, err := commands.NewCreateOrderCommand(id, body.StoreID, body.Email, body.Currency, body.WorkflowID, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id})
}

// RepackOrder handles POST /api/v1/orders/:id/repack.
func (s *Server) RepackOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body RepackRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRepackOrderCommand(orderID, body.ProfileID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.RepackOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := RepackResponse{
		Shipments: make([]ShipmentSummary, 0, len(result.Shipments)),
		Created:   ids(result.Created),
		Updated:   ids(result.Updated),
		Removed:   ids(result.Removed),
	}
	for _, sh := range result.Shipments {
		response.Shipments = append(response.Shipments, toShipmentSummary(sh))
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transitions.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, body.Transition)
	if err != nil {
		return s.fail(ctx, err)
	}

	state, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{State: state})
}

// RecalculateOrderTotal handles POST /api/v1/orders/:id/recalculate.
func (s *Server) RecalculateOrderTotal(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRecalculateOrderTotalCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	total, err := s.handlers.RecalculateOrderTotal.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TotalResponse{Total: toMoney(total)})
}

// GetOrderShipments handles GET /api/v1/orders/:id/shipments.
func (s *Server) GetOrderShipments(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderShipmentsQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	shipments, err := s.handlers.GetOrderShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Shipment, len(shipments))
	for i, sh := range shipments {
		response[i] = toShipment(sh)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectShippingRate handles PUT /api/v1/shipments/:id/rate.
func (s *Server) SelectShippingRate(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body SelectRateRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoney(body.Amount.Number, body.Amount.Currency)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("amount", err))
	}

	cmd, err := commands.NewSelectShippingRateCommand(shipmentID, body.ShippingMethod, body.ShippingService, amount)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SelectShippingRate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	var id kernel.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err = id.Validate(); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func newOrGiven(id *kernel.UUID) kernel.UUID {
	if id == nil || id.IsZero() {
		return kernel.NewUUID()
	}
	return *id
}
