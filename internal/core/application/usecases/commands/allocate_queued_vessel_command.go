package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrAllocateQueuedVesselCommandIsNotConstructed = errors.New(
	"AllocateQueuedVesselCommand must be created via NewAllocateQueuedVesselCommand constructor",
)

// AllocateQueuedVesselCommand docks the best waiting vessel at a free berth.
// It is issued periodically by the allocation job under the system operator.
type AllocateQueuedVesselCommand struct {
	caller kernel.Principal

	guard guard.ConstructorGuard
}

func NewAllocateQueuedVesselCommand(caller string) (AllocateQueuedVesselCommand, error) {
	principal, err := kernel.NewPrincipal(caller)
	if err != nil {
		return AllocateQueuedVesselCommand{}, err
	}
	return AllocateQueuedVesselCommand{caller: principal, guard: guard.NewConstructorGuard()}, nil
}

func (c AllocateQueuedVesselCommand) Validate() error {
	return c.guard.Validate(ErrAllocateQueuedVesselCommandIsNotConstructed)
}

func (c AllocateQueuedVesselCommand) Caller() kernel.Principal { return c.caller }
