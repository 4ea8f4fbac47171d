package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

// vesselCommand is the shared shape of commands that address a single vessel.
type vesselCommand struct {
	caller   kernel.Principal
	vesselID kernel.ID

	guard guard.ConstructorGuard
}

func newVesselCommand(caller string, vesselID uint64) (vesselCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	id, idErr := kernel.NewID(vesselID)
	if err := errors.Join(callerErr, idErr); err != nil {
		return vesselCommand{}, err
	}
	return vesselCommand{caller: principal, vesselID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c vesselCommand) Caller() kernel.Principal { return c.caller }

func (c vesselCommand) VesselID() kernel.ID { return c.vesselID }
