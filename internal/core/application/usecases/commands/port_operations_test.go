package commands_test

import (
	"testing"

	"seaport/internal/adapters/out/authz"
	"seaport/internal/adapters/out/clock"
	"seaport/internal/adapters/out/postgres"
	"seaport/internal/adapters/out/postgres/counterrepo"
	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/operation"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/ports"
	"seaport/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	portOwner   = "port-authority"
	harbour     = "harbour-master"
	shipOwner   = "acme-shipping"
	stevedore   = "stevedore-7"
	unprivilege = "stranger"
)

type gormFactory struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (f gormFactory) Create() commands.UoW {
	return f.factory.Create()
}

// PortOperationsSuite runs the command handlers against an in-memory SQLite
// database so the repositories, counters and gate take part.
type PortOperationsSuite struct {
	suite.Suite

	db      *gorm.DB
	clock   *clock.LogicalClock
	gate    *authz.RoleGate
	factory commands.UoWFactory
}

func TestPortOperationsSuite(t *testing.T) {
	suite.Run(t, new(PortOperationsSuite))
}

func (s *PortOperationsSuite) SetupTest() {
	db, err := postgres.NewTestConnection()
	s.Require().NoError(err)

	s.db = db
	s.clock = clock.NewLogicalClock(0)
	s.gate = authz.NewRoleGate(db, portOwner)
	s.factory = gormFactory{factory: postgres.NewGormUnitOfWorkFactory(db, nil)}

	s.grant(harbour, kernel.RolePortOperator)
}

func (s *PortOperationsSuite) TearDownTest() {
	s.Require().NoError(postgres.Close(s.db))
}

func (s *PortOperationsSuite) grant(principal string, role kernel.Role) {
	cmd, err := commands.NewChangeRoleCommand(portOwner, principal, role.String())
	s.Require().NoError(err)
	s.Require().NoError(commands.NewChangeRoleCommandHandler(s.factory, s.gate).Grant(s.T().Context(), cmd))
}

func (s *PortOperationsSuite) registerVessel(owner string, length int, class string) kernel.ID {
	cmd, err := commands.NewRegisterVesselCommand(owner, length, 30, 10, 4000, class, int64(s.clock.Now())+10)
	s.Require().NoError(err)
	id, err := commands.NewRegisterVesselCommandHandler(s.factory, s.clock).Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return id
}

func (s *PortOperationsSuite) registerBerth(name string, maxLength int, class string) kernel.ID {
	cmd, err := commands.NewRegisterBerthCommand(harbour, commands.RegisterBerthSpec{
		Name:           name,
		MaxLength:      maxLength,
		MaxBeam:        40,
		MaxDraft:       12,
		SupportedClass: class,
		CraneCapacity:  2,
		HourlyRate:     750,
	})
	s.Require().NoError(err)
	id, err := commands.NewRegisterBerthCommandHandler(s.factory, s.gate).Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return id
}

func (s *PortOperationsSuite) assign(caller string, vesselID, berthID kernel.ID) error {
	cmd, err := commands.NewAssignBerthCommand(caller, uint64(vesselID), uint64(berthID))
	s.Require().NoError(err)
	return commands.NewAssignBerthCommandHandler(s.factory, s.gate, s.clock).Handle(s.T().Context(), cmd)
}

func (s *PortOperationsSuite) release(caller string, vesselID kernel.ID) error {
	cmd, err := commands.NewReleaseBerthCommand(caller, uint64(vesselID))
	s.Require().NoError(err)
	return commands.NewReleaseBerthCommandHandler(s.factory, s.gate).Handle(s.T().Context(), cmd)
}

func (s *PortOperationsSuite) berthsInUse() int64 {
	n, err := counterrepo.NewGormCounterRepository(s.db).Value(s.T().Context(), ports.BerthsInUse)
	s.Require().NoError(err)
	return n
}

// load reads an aggregate inside a throwaway unit of work.
func load[T any](s *PortOperationsSuite, get func(commands.UoW) (T, error)) T {
	ctx := s.T().Context()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := get(uow)
	s.Require().NoError(err)
	return v
}

func (s *PortOperationsSuite) TestIdentifiersAreSequentialPerClass() {
	first := s.registerVessel(shipOwner, 150, "standard")
	second := s.registerVessel(shipOwner, 150, "standard")
	berthID := s.registerBerth("North 1", 250, "any")

	s.Equal(kernel.ID(1), first)
	s.Equal(kernel.ID(2), second)
	s.Equal(kernel.ID(1), berthID)
}

func (s *PortOperationsSuite) TestBerthHoldsOneVessel() {
	berthID := s.registerBerth("North 1", 250, "any")
	other := s.registerBerth("North 2", 250, "any")
	first := s.registerVessel(shipOwner, 200, "standard")
	second := s.registerVessel(shipOwner, 200, "standard")

	s.Require().NoError(s.assign(harbour, first, berthID))

	err := s.assign(harbour, second, berthID)
	s.Require().ErrorIs(err, berth.ErrBerthOccupied)
	s.Require().ErrorIs(err, errs.ErrResourceOccupied)

	err = s.assign(harbour, first, other)
	s.Require().ErrorIs(err, vessel.ErrAlreadyAssigned)

	s.Equal(int64(1), s.berthsInUse())
}

func (s *PortOperationsSuite) TestVesselTooLargeLeavesStateUntouched() {
	berthID := s.registerBerth("Feeder", 120, "any")
	vesselID := s.registerVessel(shipOwner, 200, "standard")

	err := s.assign(harbour, vesselID, berthID)

	s.Require().ErrorIs(err, berth.ErrVesselTooLarge)
	s.Require().ErrorIs(err, errs.ErrCapacityExceeded)
	v := load(s, func(uow commands.UoW) (*vessel.Vessel, error) {
		return uow.VesselRepository().Get(s.T().Context(), vesselID)
	})
	s.Equal(vessel.Registered, v.Status())
	s.Nil(v.Berth())
	s.Zero(s.berthsInUse())
}

func (s *PortOperationsSuite) TestReleaseThenReassign() {
	berthID := s.registerBerth("North 1", 250, "any")
	first := s.registerVessel(shipOwner, 200, "standard")
	second := s.registerVessel("other-line", 200, "standard")

	s.Require().NoError(s.assign(harbour, first, berthID))
	s.Require().NoError(s.release(shipOwner, first))
	s.Zero(s.berthsInUse())

	s.Require().NoError(s.assign(harbour, second, berthID))
	s.Equal(int64(1), s.berthsInUse())

	departed := load(s, func(uow commands.UoW) (*vessel.Vessel, error) {
		return uow.VesselRepository().Get(s.T().Context(), first)
	})
	s.Equal(vessel.Departed, departed.Status())
	s.Nil(departed.Berth())

	err := s.release(shipOwner, first)
	s.Require().ErrorIs(err, vessel.ErrNoBerthAssigned)
}

func (s *PortOperationsSuite) TestReleaseRequiresOwnerOrOperator() {
	berthID := s.registerBerth("North 1", 250, "any")
	vesselID := s.registerVessel(shipOwner, 200, "standard")
	s.Require().NoError(s.assign(harbour, vesselID, berthID))

	err := s.release(unprivilege, vesselID)

	s.Require().ErrorIs(err, errs.ErrUnauthorized)
	s.Equal(int64(1), s.berthsInUse())
}

func (s *PortOperationsSuite) TestOnlyOperatorsAssignBerths() {
	berthID := s.registerBerth("North 1", 250, "any")
	vesselID := s.registerVessel(shipOwner, 200, "standard")

	err := s.assign(shipOwner, vesselID, berthID)

	s.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (s *PortOperationsSuite) TestQueueAndAllocation() {
	ctx := s.T().Context()
	small := s.registerBerth("Feeder", 150, "any")
	large := s.registerBerth("Deep water", 300, "any")
	standard := s.registerVessel(shipOwner, 140, "standard")
	emergency := s.registerVessel(shipOwner, 280, "emergency")

	queueHandler := commands.NewAddToQueueCommandHandler(s.factory, s.gate, s.clock)
	for _, id := range []kernel.ID{standard, emergency} {
		cmd, err := commands.NewAddToQueueCommand(shipOwner, uint64(id))
		s.Require().NoError(err)
		_, err = queueHandler.Handle(ctx, cmd)
		s.Require().NoError(err)
	}

	again, err := commands.NewAddToQueueCommand(shipOwner, uint64(standard))
	s.Require().NoError(err)
	_, err = queueHandler.Handle(ctx, again)
	s.Require().ErrorIs(err, errs.ErrInvalidStatus)

	allocate := commands.NewAllocateQueuedVesselCommandHandler(s.factory, s.gate, s.clock)
	cmd, err := commands.NewAllocateQueuedVesselCommand(harbour)
	s.Require().NoError(err)

	allocation, err := allocate.Handle(ctx, cmd)
	s.Require().NoError(err)
	s.Equal(commands.Allocation{VesselID: emergency, BerthID: large}, allocation)

	allocation, err = allocate.Handle(ctx, cmd)
	s.Require().NoError(err)
	s.Equal(commands.Allocation{VesselID: standard, BerthID: small}, allocation)

	_, err = allocate.Handle(ctx, cmd)
	s.Require().ErrorIs(err, commands.ErrQueueIsEmpty)
	s.Equal(int64(2), s.berthsInUse())
}

func (s *PortOperationsSuite) TestScheduleDepartureRequiresFutureTick() {
	ctx := s.T().Context()
	berthID := s.registerBerth("North 1", 250, "any")
	vesselID := s.registerVessel(shipOwner, 200, "standard")
	s.Require().NoError(s.assign(harbour, vesselID, berthID))
	s.clock.Advance(50)

	handler := commands.NewScheduleDepartureCommandHandler(s.factory, s.gate, s.clock)

	past, err := commands.NewScheduleDepartureCommand(shipOwner, uint64(vesselID), 50)
	s.Require().NoError(err)
	s.Require().ErrorIs(handler.Handle(ctx, past), vessel.ErrDepartureNotInFuture)

	future, err := commands.NewScheduleDepartureCommand(shipOwner, uint64(vesselID), 80)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(ctx, future))

	v := load(s, func(uow commands.UoW) (*vessel.Vessel, error) {
		return uow.VesselRepository().Get(ctx, vesselID)
	})
	s.Equal(vessel.ScheduledDeparture, v.Status())
	s.Require().NotNil(v.ScheduledDeparture())
	s.Equal(kernel.Tick(80), *v.ScheduledDeparture())
}

func (s *PortOperationsSuite) TestSchedules() {
	ctx := s.T().Context()
	berthID := s.registerBerth("North 1", 250, "any")
	first := s.registerVessel(shipOwner, 200, "standard")
	second := s.registerVessel(shipOwner, 200, "standard")
	create := commands.NewCreateScheduleCommandHandler(s.factory, s.gate, s.clock)

	cmd, err := commands.NewCreateScheduleCommand(harbour, uint64(first), uint64(berthID), 10, 20)
	s.Require().NoError(err)
	scheduleID, err := create.Handle(ctx, cmd)
	s.Require().NoError(err)

	overlapping, err := commands.NewCreateScheduleCommand(harbour, uint64(second), uint64(berthID), 19, 30)
	s.Require().NoError(err)
	_, err = create.Handle(ctx, overlapping)
	s.Require().ErrorIs(err, schedule.ErrBerthWindowTaken)

	adjacent, err := commands.NewCreateScheduleCommand(harbour, uint64(second), uint64(berthID), 20, 30)
	s.Require().NoError(err)
	_, err = create.Handle(ctx, adjacent)
	s.Require().NoError(err)

	events := commands.NewScheduleEventCommandHandler(s.factory, s.gate, s.clock)
	arrival, err := commands.NewRecordArrivalCommand(harbour, uint64(scheduleID))
	s.Require().NoError(err)
	s.Require().ErrorIs(events.HandleArrival(ctx, arrival), schedule.ErrArrivalTooEarly)

	s.clock.AdvanceTo(12)
	s.Require().NoError(events.HandleArrival(ctx, arrival))

	departure, err := commands.NewRecordDepartureCommand(harbour, uint64(scheduleID))
	s.Require().NoError(err)
	s.Require().NoError(events.HandleDeparture(ctx, departure))

	done := load(s, func(uow commands.UoW) (*schedule.Schedule, error) {
		return uow.ScheduleRepository().Get(ctx, scheduleID)
	})
	s.False(done.IsActive())
	s.Require().NotNil(done.ActualArrival())
	s.Equal(kernel.Tick(12), *done.ActualArrival())

	departed := load(s, func(uow commands.UoW) (*vessel.Vessel, error) {
		return uow.VesselRepository().Get(ctx, first)
	})
	s.Equal(vessel.Departed, departed.Status())
	s.Zero(s.berthsInUse())
}

func (s *PortOperationsSuite) book(vesselID, berthID kernel.ID, arrival, departure int64) kernel.ID {
	cmd, err := commands.NewCreateScheduleCommand(harbour, uint64(vesselID), uint64(berthID), arrival, departure)
	s.Require().NoError(err)
	id, err := commands.NewCreateScheduleCommandHandler(s.factory, s.gate, s.clock).Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return id
}

func (s *PortOperationsSuite) arrive(scheduleID kernel.ID) error {
	cmd, err := commands.NewRecordArrivalCommand(harbour, uint64(scheduleID))
	s.Require().NoError(err)
	return commands.NewScheduleEventCommandHandler(s.factory, s.gate, s.clock).HandleArrival(s.T().Context(), cmd)
}

func (s *PortOperationsSuite) depart(scheduleID kernel.ID) error {
	cmd, err := commands.NewRecordDepartureCommand(harbour, uint64(scheduleID))
	s.Require().NoError(err)
	return commands.NewScheduleEventCommandHandler(s.factory, s.gate, s.clock).HandleDeparture(s.T().Context(), cmd)
}

func (s *PortOperationsSuite) berthAt(berthID kernel.ID) *berth.Berth {
	return load(s, func(uow commands.UoW) (*berth.Berth, error) {
		return uow.BerthRepository().Get(s.T().Context(), berthID)
	})
}

func (s *PortOperationsSuite) TestBookedWindowKeepsBerthForItsVessel() {
	ctx := s.T().Context()
	booked := s.registerBerth("North 1", 250, "any")
	spare := s.registerBerth("North 2", 300, "any")
	holder := s.registerVessel(shipOwner, 200, "standard")
	intruder := s.registerVessel("other-line", 200, "standard")

	scheduleID := s.book(holder, booked, 0, 100)

	err := s.assign(harbour, intruder, booked)
	s.Require().ErrorIs(err, schedule.ErrBerthWindowTaken)
	s.Require().ErrorIs(err, errs.ErrResourceOccupied)
	s.False(s.berthAt(booked).IsOccupied())
	s.Zero(s.berthsInUse())

	enqueue, err := commands.NewAddToQueueCommand("other-line", uint64(intruder))
	s.Require().NoError(err)
	_, err = commands.NewAddToQueueCommandHandler(s.factory, s.gate, s.clock).Handle(ctx, enqueue)
	s.Require().NoError(err)

	allocate, err := commands.NewAllocateQueuedVesselCommand(harbour)
	s.Require().NoError(err)
	allocation, err := commands.NewAllocateQueuedVesselCommandHandler(s.factory, s.gate, s.clock).Handle(ctx, allocate)
	s.Require().NoError(err)
	s.Equal(commands.Allocation{VesselID: intruder, BerthID: spare}, allocation)

	s.Require().NoError(s.arrive(scheduleID))

	docked := load(s, func(uow commands.UoW) (*vessel.Vessel, error) {
		return uow.VesselRepository().Get(ctx, holder)
	})
	s.Equal(vessel.Docked, docked.Status())
	s.Require().NotNil(docked.Berth())
	s.Equal(booked, *docked.Berth())
	s.Require().NotNil(s.berthAt(booked).CurrentVessel())
	s.Equal(holder, *s.berthAt(booked).CurrentVessel())
	s.Equal(int64(2), s.berthsInUse())

	s.clock.AdvanceTo(60)
	s.Require().NoError(s.depart(scheduleID))

	left := load(s, func(uow commands.UoW) (*vessel.Vessel, error) {
		return uow.VesselRepository().Get(ctx, holder)
	})
	s.Equal(vessel.Departed, left.Status())
	s.Nil(left.Berth())
	s.False(s.berthAt(booked).IsOccupied())
	s.Equal(int64(1), s.berthsInUse())
}

func (s *PortOperationsSuite) TestArrivalAtOccupiedBerthIsRejected() {
	ctx := s.T().Context()
	berthID := s.registerBerth("North 1", 250, "any")
	holder := s.registerVessel(shipOwner, 200, "standard")
	early := s.registerVessel("other-line", 200, "standard")

	scheduleID := s.book(holder, berthID, 50, 100)
	s.Require().NoError(s.assign(harbour, early, berthID))

	s.clock.AdvanceTo(50)
	err := s.arrive(scheduleID)
	s.Require().ErrorIs(err, berth.ErrBerthOccupied)

	pending := load(s, func(uow commands.UoW) (*schedule.Schedule, error) {
		return uow.ScheduleRepository().Get(ctx, scheduleID)
	})
	s.Nil(pending.ActualArrival())
	s.Equal(schedule.Scheduled, pending.Status())
	s.Equal(int64(1), s.berthsInUse())

	s.Require().NoError(s.release("other-line", early))
	s.Require().NoError(s.arrive(scheduleID))
	s.Equal(holder, *s.berthAt(berthID).CurrentVessel())
	s.Equal(int64(1), s.berthsInUse())
}

func (s *PortOperationsSuite) updateInventory(equipmentType string, total, available int) {
	cmd, err := commands.NewUpdateEquipmentInventoryCommand(harbour, equipmentType, total, available, total-available)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewUpdateEquipmentInventoryCommandHandler(s.factory, s.gate).Handle(s.T().Context(), cmd))
}

func (s *PortOperationsSuite) registerContainer(spec commands.RegisterContainerSpec) kernel.ID {
	cmd, err := commands.NewRegisterContainerCommand(shipOwner, spec)
	s.Require().NoError(err)
	id, err := commands.NewRegisterContainerCommandHandler(s.factory).Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return id
}

func (s *PortOperationsSuite) TestEquipmentRoundTrip() {
	ctx := s.T().Context()
	s.updateInventory("crane", 2, 2)
	containerID := s.registerContainer(commands.RegisterContainerSpec{Weight: 20000, CargoType: "general"})

	create := commands.NewCreateOperationCommandHandler(s.factory, s.gate, s.clock)
	cmd, err := commands.NewCreateOperationCommand(shipOwner, "loading", uint64(containerID), "crane")
	s.Require().NoError(err)
	operationID, err := create.Handle(ctx, cmd)
	s.Require().NoError(err)

	inventory := load(s, func(uow commands.UoW) (*equipment.Inventory, error) {
		return uow.EquipmentRepository().Get(ctx, "crane")
	})
	s.Equal(1, inventory.Available())
	s.Equal([]int{1}, inventory.Reserved())

	s.clock.Advance(operation.StandardLoading)
	complete, err := commands.NewCompleteOperationCommand(shipOwner, uint64(operationID))
	s.Require().NoError(err)
	efficiency, err := commands.NewCompleteOperationCommandHandler(s.factory, s.clock).Handle(ctx, complete)
	s.Require().NoError(err)
	s.InDelta(100.0, efficiency, 1e-9)

	inventory = load(s, func(uow commands.UoW) (*equipment.Inventory, error) {
		return uow.EquipmentRepository().Get(ctx, "crane")
	})
	s.Equal(2, inventory.Available())
	s.Empty(inventory.Reserved())

	c := load(s, func(uow commands.UoW) (*cargo.Container, error) {
		return uow.ContainerRepository().Get(ctx, containerID)
	})
	s.Equal(cargo.Loaded, c.Status())
}

func (s *PortOperationsSuite) TestCompletingTwiceChangesNothing() {
	ctx := s.T().Context()
	s.updateInventory("straddle-carrier", 1, 1)
	containerID := s.registerContainer(commands.RegisterContainerSpec{Weight: 8000, CargoType: "general"})

	cmd, err := commands.NewCreateOperationCommand(shipOwner, "transfer", uint64(containerID), "straddle-carrier")
	s.Require().NoError(err)
	operationID, err := commands.NewCreateOperationCommandHandler(s.factory, s.gate, s.clock).Handle(ctx, cmd)
	s.Require().NoError(err)

	s.clock.Advance(160)
	complete, err := commands.NewCompleteOperationCommand(shipOwner, uint64(operationID))
	s.Require().NoError(err)
	handler := commands.NewCompleteOperationCommandHandler(s.factory, s.clock)
	efficiency, err := handler.Handle(ctx, complete)
	s.Require().NoError(err)
	s.InDelta(200.0, efficiency, 1e-9)

	s.clock.Advance(40)
	_, err = handler.Handle(ctx, complete)
	s.Require().ErrorIs(err, errs.ErrInvalidStatus)

	op := load(s, func(uow commands.UoW) (*operation.Operation, error) {
		return uow.OperationRepository().Get(ctx, operationID)
	})
	s.Equal(operation.Completed, op.Status())
	s.Require().NotNil(op.End())
	s.Equal(kernel.Tick(160), *op.End())
	s.InDelta(200.0, op.Efficiency(), 1e-9)
}

func (s *PortOperationsSuite) TestOnlyTheStartingOperatorCompletes() {
	ctx := s.T().Context()
	s.updateInventory("crane", 1, 1)
	containerID := s.registerContainer(commands.RegisterContainerSpec{Weight: 8000, CargoType: "general"})

	cmd, err := commands.NewCreateOperationCommand(harbour, "unloading", uint64(containerID), "crane")
	s.Require().NoError(err)
	operationID, err := commands.NewCreateOperationCommandHandler(s.factory, s.gate, s.clock).Handle(ctx, cmd)
	s.Require().NoError(err)

	complete, err := commands.NewCompleteOperationCommand(shipOwner, uint64(operationID))
	s.Require().NoError(err)
	_, err = commands.NewCompleteOperationCommandHandler(s.factory, s.clock).Handle(ctx, complete)

	s.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (s *PortOperationsSuite) TestNoEquipmentAvailable() {
	ctx := s.T().Context()
	s.updateInventory("crane", 1, 0)
	containerID := s.registerContainer(commands.RegisterContainerSpec{Weight: 8000, CargoType: "general"})

	cmd, err := commands.NewCreateOperationCommand(shipOwner, "loading", uint64(containerID), "crane")
	s.Require().NoError(err)
	_, err = commands.NewCreateOperationCommandHandler(s.factory, s.gate, s.clock).Handle(ctx, cmd)

	s.Require().ErrorIs(err, equipment.ErrNoUnitAvailable)
	c := load(s, func(uow commands.UoW) (*cargo.Container, error) {
		return uow.ContainerRepository().Get(ctx, containerID)
	})
	s.Equal(cargo.InYard, c.Status())
}

func (s *PortOperationsSuite) TestCargoTracking() {
	ctx := s.T().Context()
	vesselID := s.registerVessel(shipOwner, 200, "cargo")
	containerID := s.registerContainer(commands.RegisterContainerSpec{
		Weight:      14000,
		CargoType:   "Hazardous",
		VesselID:    uint64(vesselID),
		Location:    "hold 3",
		Destination: "Rotterdam",
	})

	c := load(s, func(uow commands.UoW) (*cargo.Container, error) {
		return uow.ContainerRepository().Get(ctx, containerID)
	})
	s.Equal(cargo.PriorityHazardous, c.HandlingPriority())
	s.Equal(cargo.Arriving, c.Status())

	track := commands.NewTrackCargoMovementCommandHandler(s.factory, s.gate, s.clock)
	cmd, err := commands.NewTrackCargoMovementCommand(shipOwner, uint64(containerID), "discharge", "quay 2", "in-yard", "")
	s.Require().NoError(err)
	checkpointID, err := track.Handle(ctx, cmd)
	s.Require().NoError(err)
	s.NotEqual(checkpointID.String(), "00000000-0000-0000-0000-000000000000")

	_, err = track.Handle(ctx, cmd)
	s.Require().ErrorIs(err, cargo.ErrCheckpointExists)
	s.Require().ErrorIs(err, errs.ErrAlreadyExists)

	stranger, err := commands.NewTrackCargoMovementCommand(unprivilege, uint64(containerID), "gate", "gate", "in-yard", "")
	s.Require().NoError(err)
	_, err = track.Handle(ctx, stranger)
	s.Require().ErrorIs(err, errs.ErrUnauthorized)

	c = load(s, func(uow commands.UoW) (*cargo.Container, error) {
		return uow.ContainerRepository().Get(ctx, containerID)
	})
	s.Equal(cargo.InYard, c.Status())
	s.Equal("quay 2", c.Location())
}

func (s *PortOperationsSuite) TestContainerOnUnknownVessel() {
	cmd, err := commands.NewRegisterContainerCommand(shipOwner, commands.RegisterContainerSpec{
		Weight:    1000,
		CargoType: "general",
		VesselID:  42,
	})
	s.Require().NoError(err)

	_, err = commands.NewRegisterContainerCommandHandler(s.factory).Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PortOperationsSuite) TestRoleChanges() {
	ctx := s.T().Context()
	handler := commands.NewChangeRoleCommandHandler(s.factory, s.gate)

	byOperator, err := commands.NewChangeRoleCommand(harbour, stevedore, "authorized-handler")
	s.Require().NoError(err)
	s.Require().ErrorIs(handler.Grant(ctx, byOperator), errs.ErrUnauthorized)

	s.grant(stevedore, kernel.RoleAuthorizedHandler)
	ok, err := s.gate.IsAuthorized(ctx, stevedore, kernel.RoleAuthorizedHandler)
	s.Require().NoError(err)
	s.True(ok)

	revoke, err := commands.NewChangeRoleCommand(portOwner, stevedore, "authorized-handler")
	s.Require().NoError(err)
	s.Require().NoError(handler.Revoke(ctx, revoke))
	ok, err = s.gate.IsAuthorized(ctx, stevedore, kernel.RoleAuthorizedHandler)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *PortOperationsSuite) TestBerthOutOfService() {
	ctx := s.T().Context()
	berthID := s.registerBerth("North 1", 250, "any")
	vesselID := s.registerVessel(shipOwner, 200, "standard")
	handler := commands.NewSetBerthOperationalCommandHandler(s.factory, s.gate)

	off, err := commands.NewSetBerthOperationalCommand(harbour, uint64(berthID), false)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(ctx, off))

	s.Require().ErrorIs(s.assign(harbour, vesselID, berthID), berth.ErrBerthNotOperational)

	on, err := commands.NewSetBerthOperationalCommand(harbour, uint64(berthID), true)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(ctx, on))
	s.Require().NoError(s.assign(harbour, vesselID, berthID))

	s.Require().ErrorIs(handler.Handle(ctx, off), berth.ErrBerthOccupied)
}

func (s *PortOperationsSuite) TestRecordPerformanceMetric() {
	ctx := s.T().Context()
	handler := commands.NewRecordPerformanceMetricCommandHandler(s.factory, s.gate, s.clock)

	cmd, err := commands.NewRecordPerformanceMetricCommand(harbour, "berth-occupancy", 72.5, 80)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(ctx, cmd))

	invalid, err := commands.NewRecordPerformanceMetricCommand(harbour, "berth-occupancy", 10, 0)
	s.Require().NoError(err)
	s.Require().ErrorIs(handler.Handle(ctx, invalid), errs.ErrValueIsInvalid)

	denied, err := commands.NewRecordPerformanceMetricCommand(shipOwner, "berth-occupancy", 10, 20)
	s.Require().NoError(err)
	s.Require().ErrorIs(handler.Handle(ctx, denied), errs.ErrUnauthorized)
}

func (s *PortOperationsSuite) TestContainerRunsOneOperationAtATime() {
	ctx := s.T().Context()
	s.updateInventory("crane", 2, 2)
	containerID := s.registerContainer(commands.RegisterContainerSpec{Weight: 9000, CargoType: "general"})

	create := commands.NewCreateOperationCommandHandler(s.factory, s.gate, s.clock)
	loading, err := commands.NewCreateOperationCommand(shipOwner, "loading", uint64(containerID), "crane")
	s.Require().NoError(err)
	operationID, err := create.Handle(ctx, loading)
	s.Require().NoError(err)

	_, err = create.Handle(ctx, loading)
	s.Require().ErrorIs(err, cargo.ErrContainerInOperation)
	s.Require().ErrorIs(err, errs.ErrInvalidStatus)

	track := commands.NewTrackCargoMovementCommandHandler(s.factory, s.gate, s.clock)
	moved, err := commands.NewTrackCargoMovementCommand(shipOwner, uint64(containerID), "yard", "stack 4", "in-yard", "")
	s.Require().NoError(err)
	_, err = track.Handle(ctx, moved)
	s.Require().ErrorIs(err, cargo.ErrContainerInOperation)

	inventory := load(s, func(uow commands.UoW) (*equipment.Inventory, error) {
		return uow.EquipmentRepository().Get(ctx, "crane")
	})
	s.Equal(1, inventory.Available())

	s.clock.Advance(operation.StandardLoading)
	complete, err := commands.NewCompleteOperationCommand(shipOwner, uint64(operationID))
	s.Require().NoError(err)
	_, err = commands.NewCompleteOperationCommandHandler(s.factory, s.clock).Handle(ctx, complete)
	s.Require().NoError(err)

	c := load(s, func(uow commands.UoW) (*cargo.Container, error) {
		return uow.ContainerRepository().Get(ctx, containerID)
	})
	s.Equal(cargo.Loaded, c.Status())
}
