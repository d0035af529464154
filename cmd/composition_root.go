package cmd

import (
	"log/slog"
	"net/http"
	"sync"

	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/metrics"
	"pizzeria/internal/core/application/tracking"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CompositionRoot owns the process-wide collaborators shared by all handlers: the
// in-preparation tracker, the per-customer locks, the kitchen dispatch mutex and the
// metrics registry.
type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger

	tracker *tracking.InPreparationTracker
	locks   *tracking.CustomerLocks
	kitchen *sync.Mutex
	pricing services.PricingEngine

	registry      *prometheus.Registry
	lifecycle     *metrics.Lifecycle
	serverMetrics *metrics.ServerMetrics
}

func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *CompositionRoot {
	tracker := tracking.NewInPreparationTracker()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterTrackerSize(registry, tracker.Len)

	return &CompositionRoot{
		config:        config,
		uowFactory:    uowFactory,
		logger:        logger,
		tracker:       tracker,
		locks:         tracking.NewCustomerLocks(),
		kitchen:       &sync.Mutex{},
		pricing:       services.NewPricingEngine(),
		registry:      registry,
		lifecycle:     metrics.NewLifecycle(registry),
		serverMetrics: metrics.NewServerMetrics(registry),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReaderFactory() queries.OrderReaderFactory {
	return FuncOrderReaderFactory(func() queries.OrderReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory(), c.locks, c.lifecycle)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.locks, c.lifecycle)
}

func (c *CompositionRoot) CreatePickNextOrderCommandHandler() commands.PickNextOrderCommandHandler {
	return commands.NewPickNextOrderCommandHandler(c.orderUoWFactory(), c.kitchen, c.tracker, c.lifecycle)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.kitchen, c.tracker, c.pricing, c.lifecycle)
}

func (c *CompositionRoot) CreateReconcileTrackerCommandHandler() commands.ReconcileTrackerCommandHandler {
	return commands.NewReconcileTrackerCommandHandler(c.orderUoWFactory(), c.kitchen, c.tracker)
}

func (c *CompositionRoot) CreateGetCurrentPreparationQueryHandler() queries.GetCurrentPreparationQueryHandler {
	return queries.NewGetCurrentPreparationQueryHandler(c.orderReaderFactory(), c.kitchen, c.tracker)
}

func (c *CompositionRoot) CreateGetPlacedOrdersQueryHandler() queries.GetPlacedOrdersQueryHandler {
	return queries.NewGetPlacedOrdersQueryHandler(c.orderReaderFactory())
}

func (c *CompositionRoot) CreateGetKitchenOverviewQueryHandler() queries.GetKitchenOverviewQueryHandler {
	return queries.NewGetKitchenOverviewQueryHandler(c.tracker)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileTrackerCommandHandler(), c.config.ReconcileSchedule, c.logger)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(
		c.CreateAddItemCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreatePickNextOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetCurrentPreparationQueryHandler(),
		c.CreateGetPlacedOrdersQueryHandler(),
		c.CreateGetKitchenOverviewQueryHandler(),
		httpin.NewIdentityResolver(),
		c.logger.With("component", "http"),
	)
	return httpin.NewRouter(server, c.serverMetrics, c.MetricsHandler(), c.logger.With("component", "http"))
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return metrics.Handler(c.registry)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderReaderFactory func() queries.OrderReader

func (f FuncOrderReaderFactory) Create() queries.OrderReader {
	return f()
}
