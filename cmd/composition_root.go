package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "seaport/internal/adapters/in/http"
	"seaport/internal/adapters/out/authz"
	"seaport/internal/adapters/out/clock"
	"seaport/internal/adapters/out/metrics"
	"seaport/internal/adapters/out/postgres"
	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/application/usecases/queries"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	gate       *authz.RoleGate
	clock      *clock.LogicalClock
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	owner, err := kernel.NewPrincipal(cfg.Port.Owner)
	if err != nil {
		return nil, fmt.Errorf("port owner: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, recorder),
		gate:       authz.NewRoleGate(gormDB, owner),
		clock:      clock.NewLogicalClock(kernel.Tick(cfg.Clock.Start)),
		registry:   registry,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

// Bootstrap grants the port-operator role to the principal the background
// jobs act as.
func (c *CompositionRoot) Bootstrap(ctx context.Context) error {
	operator, err := kernel.NewPrincipal(c.cfg.Port.SystemOperator)
	if err != nil {
		return fmt.Errorf("system operator: %w", err)
	}

	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RoleRepository().Grant(ctx, operator, kernel.RolePortOperator); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterVesselCommandHandler() commands.RegisterVesselCommandHandler {
	return commands.NewRegisterVesselCommandHandler(c.unitOfWorkFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddToQueueCommandHandler() commands.AddToQueueCommandHandler {
	return commands.NewAddToQueueCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateAssignBerthCommandHandler() commands.AssignBerthCommandHandler {
	return commands.NewAssignBerthCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateReleaseBerthCommandHandler() commands.ReleaseBerthCommandHandler {
	return commands.NewReleaseBerthCommandHandler(c.unitOfWorkFactory(), c.gate)
}

func (c *CompositionRoot) CreateScheduleDepartureCommandHandler() commands.ScheduleDepartureCommandHandler {
	return commands.NewScheduleDepartureCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateAllocateQueuedVesselCommandHandler() commands.AllocateQueuedVesselCommandHandler {
	return commands.NewAllocateQueuedVesselCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateRegisterBerthCommandHandler() commands.RegisterBerthCommandHandler {
	return commands.NewRegisterBerthCommandHandler(c.unitOfWorkFactory(), c.gate)
}

func (c *CompositionRoot) CreateSetBerthOperationalCommandHandler() commands.SetBerthOperationalCommandHandler {
	return commands.NewSetBerthOperationalCommandHandler(c.unitOfWorkFactory(), c.gate)
}

func (c *CompositionRoot) CreateCreateScheduleCommandHandler() commands.CreateScheduleCommandHandler {
	return commands.NewCreateScheduleCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateScheduleEventCommandHandler() commands.ScheduleEventCommandHandler {
	return commands.NewScheduleEventCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateRegisterContainerCommandHandler() commands.RegisterContainerCommandHandler {
	return commands.NewRegisterContainerCommandHandler(c.unitOfWorkFactory())
}

func (c *CompositionRoot) CreateTrackCargoMovementCommandHandler() commands.TrackCargoMovementCommandHandler {
	return commands.NewTrackCargoMovementCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateCreateOperationCommandHandler() commands.CreateOperationCommandHandler {
	return commands.NewCreateOperationCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateCompleteOperationCommandHandler() commands.CompleteOperationCommandHandler {
	return commands.NewCompleteOperationCommandHandler(c.unitOfWorkFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateEquipmentInventoryCommandHandler() commands.UpdateEquipmentInventoryCommandHandler {
	return commands.NewUpdateEquipmentInventoryCommandHandler(c.unitOfWorkFactory(), c.gate)
}

func (c *CompositionRoot) CreateRecordPerformanceMetricCommandHandler() commands.RecordPerformanceMetricCommandHandler {
	return commands.NewRecordPerformanceMetricCommandHandler(c.unitOfWorkFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateChangeRoleCommandHandler() commands.ChangeRoleCommandHandler {
	return commands.NewChangeRoleCommandHandler(c.unitOfWorkFactory(), c.gate)
}

func (c *CompositionRoot) CreateQueries() httpin.Queries {
	return httpin.Queries{
		Vessel:             queries.NewGetVesselQueryHandler(c.gormDB),
		Berth:              queries.NewGetBerthQueryHandler(c.gormDB),
		Schedule:           queries.NewGetScheduleQueryHandler(c.gormDB),
		Container:          queries.NewGetContainerQueryHandler(c.gormDB),
		Operation:          queries.NewGetOperationQueryHandler(c.gormDB),
		EquipmentStatus:    queries.NewGetEquipmentStatusQueryHandler(c.gormDB),
		PortCapacity:       queries.NewGetPortCapacityQueryHandler(c.gormDB),
		PerformanceMetric:  queries.NewGetPerformanceMetricQueryHandler(c.gormDB),
		TurnaroundEstimate: queries.NewGetTurnaroundEstimateQueryHandler(c.gormDB),
		CargoCheckpoints:   queries.NewGetCargoCheckpointsQueryHandler(c.gormDB),
		VesselQueue:        queries.NewGetVesselQueueQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateCommands() httpin.Commands {
	return httpin.Commands{
		RegisterVessel:       c.CreateRegisterVesselCommandHandler(),
		AddToQueue:           c.CreateAddToQueueCommandHandler(),
		AssignBerth:          c.CreateAssignBerthCommandHandler(),
		ReleaseBerth:         c.CreateReleaseBerthCommandHandler(),
		ScheduleDeparture:    c.CreateScheduleDepartureCommandHandler(),
		AllocateQueuedVessel: c.CreateAllocateQueuedVesselCommandHandler(),
		RegisterBerth:        c.CreateRegisterBerthCommandHandler(),
		SetBerthOperational:  c.CreateSetBerthOperationalCommandHandler(),
		CreateSchedule:       c.CreateCreateScheduleCommandHandler(),
		ScheduleEvents:       c.CreateScheduleEventCommandHandler(),
		RegisterContainer:    c.CreateRegisterContainerCommandHandler(),
		TrackCargoMovement:   c.CreateTrackCargoMovementCommandHandler(),
		CreateOperation:      c.CreateCreateOperationCommandHandler(),
		CompleteOperation:    c.CreateCompleteOperationCommandHandler(),
		UpdateEquipment:      c.CreateUpdateEquipmentInventoryCommandHandler(),
		RecordMetric:         c.CreateRecordPerformanceMetricCommandHandler(),
		ChangeRole:           c.CreateChangeRoleCommandHandler(),
	}
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(c.CreateCommands(), c.CreateQueries(), c.clock, c.gate, c.logger)
	return httpin.NewRouter(httpin.RouterConfig{
		RateLimit: c.cfg.HTTP.RateLimit,
		Burst:     c.cfg.HTTP.Burst,
		Debug:     c.cfg.HTTP.Debug,
	}, server, c.registry, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	managed := []jobs.Job{
		jobs.NewQueuedVesselAllocationJob(
			c.CreateAllocateQueuedVesselCommandHandler(),
			c.cfg.Port.SystemOperator,
			c.cfg.Port.AllocationSpec,
			c.logger,
		),
		jobs.NewCapacitySnapshotJob(
			queries.NewGetPortCapacityQueryHandler(c.gormDB),
			c.recorder,
			c.cfg.Port.SnapshotSpec,
			c.logger,
		),
	}
	if c.cfg.Clock.TicksPerRun > 0 {
		managed = append([]jobs.Job{
			jobs.NewClockTickJob(c.clock, c.cfg.Clock.TicksPerRun, c.cfg.Clock.TickSpec, c.logger),
		}, managed...)
	}
	return jobs.NewJobManager(managed...)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
