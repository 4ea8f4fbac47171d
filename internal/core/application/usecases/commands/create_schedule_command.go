package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrCreateScheduleCommandIsNotConstructed = errors.New(
	"CreateScheduleCommand must be created via NewCreateScheduleCommand constructor",
)

// CreateScheduleCommand books a berth window [arrival, departure) for a vessel.
type CreateScheduleCommand struct {
	caller    kernel.Principal
	vesselID  kernel.ID
	berthID   kernel.ID
	arrival   kernel.Tick
	departure kernel.Tick

	guard guard.ConstructorGuard
}

func NewCreateScheduleCommand(
	caller string,
	vesselID, berthID uint64,
	arrival, departure int64,
) (CreateScheduleCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	vID, vesselErr := kernel.NewID(vesselID)
	bID, berthErr := kernel.NewID(berthID)
	arr, arrivalErr := kernel.NewTick(arrival)
	dep, departureErr := kernel.NewTick(departure)
	if err := errors.Join(callerErr, vesselErr, berthErr, arrivalErr, departureErr); err != nil {
		return CreateScheduleCommand{}, err
	}

	return CreateScheduleCommand{
		caller:    principal,
		vesselID:  vID,
		berthID:   bID,
		arrival:   arr,
		departure: dep,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateScheduleCommand) Validate() error {
	return c.guard.Validate(ErrCreateScheduleCommandIsNotConstructed)
}

func (c CreateScheduleCommand) Caller() kernel.Principal { return c.caller }

func (c CreateScheduleCommand) VesselID() kernel.ID { return c.vesselID }

func (c CreateScheduleCommand) BerthID() kernel.ID { return c.berthID }

func (c CreateScheduleCommand) Arrival() kernel.Tick { return c.arrival }

func (c CreateScheduleCommand) Departure() kernel.Tick { return c.departure }
