package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var (
	ErrRegisterVesselCommandIsNotConstructed = errors.New(
		"RegisterVesselCommand must be created via NewRegisterVesselCommand constructor",
	)
	ErrCargoCapacityIsInvalid = errs.NewValueIsInvalidError("cargo capacity")
)

// RegisterVesselCommand registers a vessel owned by the caller.
//
// Example:
//
//	cmd, err := NewRegisterVesselCommand("acme-shipping", 200, 30, 10, 5000, "cargo", 1200)
//	if err != nil {
//	    return fmt.Errorf("invalid vessel: %w", err)
//	}
//	vesselID, err := handler.Handle(ctx, cmd)
type RegisterVesselCommand struct { //nolint:recvcheck //using for validation
	caller           kernel.Principal
	dimensions       kernel.Dimensions
	cargoCapacity    int
	class            vessel.Class
	requestedArrival kernel.Tick

	guard guard.ConstructorGuard
}

// NewRegisterVesselCommand validates the vessel attributes. Every violation is
// reported, not only the first one.
func NewRegisterVesselCommand(
	caller string,
	length, beam, draft int,
	cargoCapacity int,
	class string,
	requestedArrival int64,
) (RegisterVesselCommand, error) {
	cmd := RegisterVesselCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setDimensions(length, beam, draft),
		cmd.setCargoCapacity(cargoCapacity),
		cmd.setClass(class),
		cmd.setRequestedArrival(requestedArrival),
	); err != nil {
		return RegisterVesselCommand{}, err
	}

	return cmd, nil
}

func (c RegisterVesselCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVesselCommandIsNotConstructed)
}

func (c RegisterVesselCommand) Caller() kernel.Principal { return c.caller }

func (c RegisterVesselCommand) Dimensions() kernel.Dimensions { return c.dimensions }

func (c RegisterVesselCommand) CargoCapacity() int { return c.cargoCapacity }

func (c RegisterVesselCommand) Class() vessel.Class { return c.class }

func (c RegisterVesselCommand) RequestedArrival() kernel.Tick { return c.requestedArrival }

func (c *RegisterVesselCommand) setCaller(raw string) error {
	p, err := kernel.NewPrincipal(raw)
	if err != nil {
		return err
	}
	c.caller = p
	return nil
}

func (c *RegisterVesselCommand) setDimensions(length, beam, draft int) error {
	d, err := kernel.NewDimensions(length, beam, draft)
	if err != nil {
		return err
	}
	c.dimensions = d
	return nil
}

func (c *RegisterVesselCommand) setCargoCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCargoCapacityIsInvalid
	}
	c.cargoCapacity = capacity
	return nil
}

func (c *RegisterVesselCommand) setClass(raw string) error {
	class, err := vessel.ParseClass(raw)
	if err != nil {
		return err
	}
	if err = class.ValidateForVessel(); err != nil {
		return err
	}
	c.class = class
	return nil
}

func (c *RegisterVesselCommand) setRequestedArrival(raw int64) error {
	t, err := kernel.NewTick(raw)
	if err != nil {
		return err
	}
	c.requestedArrival = t
	return nil
}
