package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
)

var ErrScheduleDepartureCommandIsNotConstructed = errors.New(
	"ScheduleDepartureCommand must be created via NewScheduleDepartureCommand constructor",
)

// ScheduleDepartureCommand announces when a docked vessel will leave.
type ScheduleDepartureCommand struct {
	vesselCommand
	departure kernel.Tick
}

func NewScheduleDepartureCommand(caller string, vesselID uint64, departure int64) (ScheduleDepartureCommand, error) {
	c, vesselErr := newVesselCommand(caller, vesselID)
	tick, tickErr := kernel.NewTick(departure)
	if err := errors.Join(vesselErr, tickErr); err != nil {
		return ScheduleDepartureCommand{}, err
	}
	return ScheduleDepartureCommand{vesselCommand: c, departure: tick}, nil
}

func (c ScheduleDepartureCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDepartureCommandIsNotConstructed)
}

func (c ScheduleDepartureCommand) Departure() kernel.Tick { return c.departure }
