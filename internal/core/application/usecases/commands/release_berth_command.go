package commands

import "errors"

var ErrReleaseBerthCommandIsNotConstructed = errors.New(
	"ReleaseBerthCommand must be created via NewReleaseBerthCommand constructor",
)

// ReleaseBerthCommand frees the berth held by a vessel and marks it departed.
type ReleaseBerthCommand struct {
	vesselCommand
}

func NewReleaseBerthCommand(caller string, vesselID uint64) (ReleaseBerthCommand, error) {
	c, err := newVesselCommand(caller, vesselID)
	if err != nil {
		return ReleaseBerthCommand{}, err
	}
	return ReleaseBerthCommand{vesselCommand: c}, nil
}

func (c ReleaseBerthCommand) Validate() error {
	return c.guard.Validate(ErrReleaseBerthCommandIsNotConstructed)
}
