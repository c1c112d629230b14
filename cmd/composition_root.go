package cmd

import (
	deliveryhttp "deliveries/internal/adapters/in/http"
	"deliveries/internal/adapters/out/eventbus"
	"deliveries/internal/adapters/out/postgres"
	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	busClient  *eventbus.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	m := metrics.NewMetrics()

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    m,
		busClient:  eventbus.NewClient(configs.EventBusURL, m),
	}
}

// EventBusClient exposes the bus client for the startup subscription.
func (c *CompositionRoot) EventBusClient() *eventbus.Client {
	return c.busClient
}

// CreateHTTPServer assembles the inbound HTTP adapter with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *deliveryhttp.Server {
	return deliveryhttp.NewServer(
		c.CreateProcessOrderEventCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
		c.metrics,
	)
}

func (c *CompositionRoot) CreateProcessOrderEventCommandHandler() commands.ProcessOrderEventCommandHandler {
	return commands.NewProcessOrderEventCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.busClient)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.deliveryUoWFactory(), c.busClient)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.busClient)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
