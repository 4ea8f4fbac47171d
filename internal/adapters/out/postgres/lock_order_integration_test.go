//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync"

	"seaport/internal/adapters/out/authz"
	"seaport/internal/adapters/out/clock"
	postgres_adapter "seaport/internal/adapters/out/postgres"
	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/services"
)

const (
	lockOrderOwner  = "port-authority"
	lockOrderShips  = "acme-shipping"
	lockOrderRounds = 8
)

type uowFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.factory.Create()
}

// concurrently runs both calls at the same time and returns their errors.
func concurrently(first, second func() error) (error, error) {
	var wg sync.WaitGroup
	var err1, err2 error
	start := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		err1 = first()
	}()
	go func() {
		defer wg.Done()
		<-start
		err2 = second()
	}()
	close(start)
	wg.Wait()
	return err1, err2
}

func (suite *UnitOfWorkIntegrationTestSuite) assertNoDeadlock(err error) {
	if err != nil {
		suite.NotContains(err.Error(), "deadlock detected")
	}
}

// Completing an operation on a container while another caller starts a new
// one on it takes operation, container and equipment rows in one order.
func (suite *UnitOfWorkIntegrationTestSuite) TestCargoHandlersShareLockOrder() {
	ctx := context.Background()
	factory := uowFactory{factory: suite.factory}
	gate := authz.NewRoleGate(suite.db, lockOrderOwner)
	logical := clock.NewLogicalClock(0)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	cranes, err := equipment.NewInventory("crane", 2, 2, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(setup.EquipmentRepository().Add(ctx, cranes))
	suite.Require().NoError(setup.Commit(ctx))

	register := commands.NewRegisterContainerCommandHandler(factory)
	create := commands.NewCreateOperationCommandHandler(factory, gate, logical)
	complete := commands.NewCompleteOperationCommandHandler(factory, logical)

	for range lockOrderRounds {
		spec := commands.RegisterContainerSpec{Weight: 12000, CargoType: "general"}
		registerCmd, err := commands.NewRegisterContainerCommand(lockOrderShips, spec)
		suite.Require().NoError(err)
		containerID, err := register.Handle(ctx, registerCmd)
		suite.Require().NoError(err)

		startCmd, err := commands.NewCreateOperationCommand(lockOrderShips, "unloading", uint64(containerID), "crane")
		suite.Require().NoError(err)
		operationID, err := create.Handle(ctx, startCmd)
		suite.Require().NoError(err)
		logical.Advance(30)

		completeCmd, err := commands.NewCompleteOperationCommand(lockOrderShips, uint64(operationID))
		suite.Require().NoError(err)
		restartCmd, err := commands.NewCreateOperationCommand(lockOrderShips, "loading", uint64(containerID), "crane")
		suite.Require().NoError(err)

		var restartID kernel.ID
		completeErr, restartErr := concurrently(
			func() error {
				_, err := complete.Handle(ctx, completeCmd)
				return err
			},
			func() error {
				var err error
				restartID, err = create.Handle(ctx, restartCmd)
				return err
			},
		)

		suite.Require().NoError(completeErr)
		suite.assertNoDeadlock(restartErr)
		if restartErr != nil {
			suite.Require().ErrorIs(restartErr, cargo.ErrContainerInOperation)
			continue
		}

		// The restart won the race after completion; finish it so the next
		// round finds the unit free again.
		finishCmd, err := commands.NewCompleteOperationCommand(lockOrderShips, uint64(restartID))
		suite.Require().NoError(err)
		_, err = complete.Handle(ctx, finishCmd)
		suite.Require().NoError(err)
	}

	reader := suite.factory.Create()
	suite.Require().NoError(reader.Begin(ctx))
	defer func() {
		_ = reader.Rollback(ctx)
	}()
	inventory, err := reader.EquipmentRepository().Get(ctx, "crane")
	suite.Require().NoError(err)
	suite.Equal(2, inventory.Available())
	suite.Empty(inventory.Reserved())
}

// Allocation from the queue and a manual assignment race for the only berth.
// Exactly one docks and the loser gets a typed error, never a deadlock.
func (suite *UnitOfWorkIntegrationTestSuite) TestDockingHandlersShareLockOrder() {
	ctx := context.Background()
	factory := uowFactory{factory: suite.factory}
	gate := authz.NewRoleGate(suite.db, lockOrderOwner)
	logical := clock.NewLogicalClock(0)

	registerVessel := commands.NewRegisterVesselCommandHandler(factory, logical)
	enqueue := commands.NewAddToQueueCommandHandler(factory, gate, logical)
	allocate := commands.NewAllocateQueuedVesselCommandHandler(factory, gate, logical)
	assign := commands.NewAssignBerthCommandHandler(factory, gate, logical)
	release := commands.NewReleaseBerthCommandHandler(factory, gate)

	berthCmd, err := commands.NewRegisterBerthCommand(lockOrderOwner, commands.RegisterBerthSpec{
		Name:           "South Quay",
		MaxLength:      250,
		MaxBeam:        40,
		MaxDraft:       12,
		SupportedClass: "any",
		CraneCapacity:  2,
		HourlyRate:     800,
	})
	suite.Require().NoError(err)
	berthID, err := commands.NewRegisterBerthCommandHandler(factory, gate).Handle(ctx, berthCmd)
	suite.Require().NoError(err)

	newVessel := func() kernel.ID {
		cmd, err := commands.NewRegisterVesselCommand(lockOrderShips, 180, 28, 9, 4000, "standard", 10)
		suite.Require().NoError(err)
		id, err := registerVessel.Handle(ctx, cmd)
		suite.Require().NoError(err)
		return id
	}

	allocateCmd, err := commands.NewAllocateQueuedVesselCommand(lockOrderOwner)
	suite.Require().NoError(err)

	for range lockOrderRounds {
		queued := newVessel()
		manual := newVessel()

		enqueueCmd, err := commands.NewAddToQueueCommand(lockOrderShips, uint64(queued))
		suite.Require().NoError(err)
		_, err = enqueue.Handle(ctx, enqueueCmd)
		suite.Require().NoError(err)

		assignCmd, err := commands.NewAssignBerthCommand(lockOrderOwner, uint64(manual), uint64(berthID))
		suite.Require().NoError(err)

		allocateErr, assignErr := concurrently(
			func() error {
				_, err := allocate.Handle(ctx, allocateCmd)
				return err
			},
			func() error {
				return assign.Handle(ctx, assignCmd)
			},
		)

		suite.assertNoDeadlock(allocateErr)
		suite.assertNoDeadlock(assignErr)

		var docked kernel.ID
		switch {
		case allocateErr == nil:
			suite.Require().ErrorIs(assignErr, berth.ErrBerthOccupied)
			docked = queued
		case assignErr == nil:
			if !errors.Is(allocateErr, berth.ErrBerthOccupied) && !errors.Is(allocateErr, services.ErrNoSuitableBerth) {
				suite.Failf("unexpected allocation error", "%v", allocateErr)
			}
			docked = manual
		default:
			suite.Failf("no vessel docked", "allocate: %v, assign: %v", allocateErr, assignErr)
			return
		}

		releaseCmd, err := commands.NewReleaseBerthCommand(lockOrderShips, uint64(docked))
		suite.Require().NoError(err)
		suite.Require().NoError(release.Handle(ctx, releaseCmd))

		// Drain the queue so every round starts from one waiting vessel.
		for {
			allocation, err := allocate.Handle(ctx, allocateCmd)
			if err != nil {
				suite.Require().ErrorIs(err, commands.ErrQueueIsEmpty)
				break
			}
			drainCmd, err := commands.NewReleaseBerthCommand(lockOrderShips, uint64(allocation.VesselID))
			suite.Require().NoError(err)
			suite.Require().NoError(release.Handle(ctx, drainCmd))
		}
	}
}
