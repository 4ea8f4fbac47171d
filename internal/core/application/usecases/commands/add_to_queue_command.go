package commands

import "errors"

var ErrAddToQueueCommandIsNotConstructed = errors.New(
	"AddToQueueCommand must be created via NewAddToQueueCommand constructor",
)

// AddToQueueCommand places a registered vessel in the waiting queue.
type AddToQueueCommand struct {
	vesselCommand
}

func NewAddToQueueCommand(caller string, vesselID uint64) (AddToQueueCommand, error) {
	c, err := newVesselCommand(caller, vesselID)
	if err != nil {
		return AddToQueueCommand{}, err
	}
	return AddToQueueCommand{vesselCommand: c}, nil
}

func (c AddToQueueCommand) Validate() error {
	return c.guard.Validate(ErrAddToQueueCommandIsNotConstructed)
}
