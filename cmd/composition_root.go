package cmd

import (
	"io"
	"log/slog"

	"shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/kafka"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/outboxrepo"
	"shipping/internal/adapters/out/workflowyaml"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	registry   *workflowyaml.Registry
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry, err := workflowyaml.Load(config.WorkflowsFile)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		registry:   registry,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, registry.ShipmentTypes()),
	}, nil
}

// PackerManager lists the packers of the service in priority order.
// The default packer goes last; it accepts every order.
func (c *CompositionRoot) PackerManager() *services.PackerManager {
	return services.NewPackerManager(
		services.NewDefaultPacker(),
	)
}

func (c *CompositionRoot) CreateCreateProfileCommandHandler() commands.CreateProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.registry)
}

func (c *CompositionRoot) CreateRepackOrderCommandHandler() commands.RepackOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRepackOrderCommandHandler(
		f,
		c.registry,
		c.PackerManager(),
		services.NewShipmentReconciler(c.registry.ShipmentTypes(), c.registry),
	)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(
		f,
		c.registry,
		services.NewOrderLifecycleSynchronizer(c.registry, nil),
	)
}

func (c *CompositionRoot) CreateRecalculateOrderTotalCommandHandler() commands.RecalculateOrderTotalCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculateOrderTotalCommandHandler(f, services.NewShipmentOrderProcessor())
}

func (c *CompositionRoot) CreateSelectShippingRateCommandHandler() commands.SelectShippingRateCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectShippingRateCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		c.Publisher(),
	)
}

func (c *CompositionRoot) CreateGetOrderShipmentsQueryHandler() queries.GetOrderShipmentsQueryHandler {
	return queries.NewGetOrderShipmentsQueryHandler(c.gormDB)
}

// Publisher returns the Kafka publisher, creating it on first use.
func (c *CompositionRoot) Publisher() *kafka.Publisher {
	if c.publisher == nil {
		c.publisher = kafka.NewPublisher(c.config.KafkaBrokers, c.config.KafkaEventsTopic)
	}
	return c.publisher
}

func (c *CompositionRoot) HTTPServer() (*http.Server, error) {
	return http.NewServer(http.Handlers{
		CreateProfile:         c.CreateCreateProfileCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		RepackOrder:           c.CreateRepackOrderCommandHandler(),
		TransitionOrder:       c.CreateTransitionOrderCommandHandler(),
		RecalculateOrderTotal: c.CreateRecalculateOrderTotalCommandHandler(),
		SelectShippingRate:    c.CreateSelectShippingRateCommandHandler(),
		GetOrderShipments:     c.CreateGetOrderShipmentsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	manager := jobs.NewJobManager(c.logger,
		jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(), c.config.OutboxRelayBatch, c.logger),
	)
	manager.CloseOnStop(c.Closers()...)
	return manager
}

// Closers lists resources to release on shutdown.
func (c *CompositionRoot) Closers() []io.Closer {
	if c.publisher == nil {
		return nil
	}
	return []io.Closer{c.publisher}
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
