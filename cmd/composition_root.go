package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/carrier"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/simulation"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	carrier    ports.CarrierAdapter
	simulator  *simulation.TrackingSimulator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	carrierClient, err := carrier.NewClient(carrier.Config{
		BaseURL: config.CarrierAPIURL,
		APIKey:  config.CarrierAPIKey,
		Timeout: time.Duration(config.CarrierTimeoutSeconds) * time.Second,
	}, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create carrier client: %w", err)
	}

	var simulator *simulation.TrackingSimulator
	if config.EnableTrackingSimulation {
		simulator = simulation.NewTrackingSimulator()
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carrier:    carrierClient,
		simulator:  simulator,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateShipmentsCommandHandler() commands.CreateShipmentsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentsCommandHandler(f, c.carrier, c.config.ShipperAddress, c.config.ServiceDescription)
}

func (c *CompositionRoot) CreateProcessShipmentCommandHandler() commands.ProcessShipmentCommandHandler {
	return commands.NewProcessShipmentCommandHandler(c.shipmentUoWFactory(), c.carrier)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	return commands.NewSchedulePickupCommandHandler(c.shipmentUoWFactory(), c.carrier)
}

func (c *CompositionRoot) CreateCancelPickupCommandHandler() commands.CancelPickupCommandHandler {
	return commands.NewCancelPickupCommandHandler(c.shipmentUoWFactory(), c.carrier)
}

func (c *CompositionRoot) CreateVoidShipmentCommandHandler() commands.VoidShipmentCommandHandler {
	return commands.NewVoidShipmentCommandHandler(c.shipmentUoWFactory(), c.carrier)
}

func (c *CompositionRoot) CreateTrackShipmentCommandHandler() commands.TrackShipmentCommandHandler {
	return commands.NewTrackShipmentCommandHandler(c.shipmentUoWFactory(), c.carrier, c.simulator)
}

func (c *CompositionRoot) CreateGetSellerShipmentsQueryHandler() queries.GetSellerShipmentsQueryHandler {
	return queries.NewGetSellerShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateShipmentsCommandHandler(),
		c.CreateProcessShipmentCommandHandler(),
		c.CreateSchedulePickupCommandHandler(),
		c.CreateCancelPickupCommandHandler(),
		c.CreateVoidShipmentCommandHandler(),
		c.CreateTrackShipmentCommandHandler(),
		c.CreateGetSellerShipmentsQueryHandler(),
		c.simulator,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.shipmentUoWFactory(),
		c.CreateTrackShipmentCommandHandler(),
		c.config.TrackingRefreshCron,
		c.logger,
	)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
