package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrAssignBerthCommandIsNotConstructed = errors.New(
	"AssignBerthCommand must be created via NewAssignBerthCommand constructor",
)

// AssignBerthCommand docks a vessel at a chosen berth.
//
// Example:
//
//	cmd, _ := NewAssignBerthCommand("harbour-master", vesselID, berthID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, berth.ErrBerthOccupied):
//	    // another vessel holds the berth
//	case errors.Is(err, berth.ErrVesselTooLarge):
//	    // a hull dimension exceeds the berth envelope
//	}
type AssignBerthCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Principal
	vesselID kernel.ID
	berthID  kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignBerthCommand(caller string, vesselID, berthID uint64) (AssignBerthCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	vID, vesselErr := kernel.NewID(vesselID)
	bID, berthErr := kernel.NewID(berthID)
	if err := errors.Join(callerErr, vesselErr, berthErr); err != nil {
		return AssignBerthCommand{}, err
	}

	return AssignBerthCommand{
		caller:   principal,
		vesselID: vID,
		berthID:  bID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignBerthCommand) Validate() error {
	return c.guard.Validate(ErrAssignBerthCommandIsNotConstructed)
}

func (c AssignBerthCommand) Caller() kernel.Principal { return c.caller }

func (c AssignBerthCommand) VesselID() kernel.ID { return c.vesselID }

func (c AssignBerthCommand) BerthID() kernel.ID { return c.berthID }
