package commands

import (
	"errors"

	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrRegisterContainerCommandIsNotConstructed = errors.New(
	"RegisterContainerCommand must be created via NewRegisterContainerCommand constructor",
)

// RegisterContainerSpec carries the attributes of a new container. VesselID
// is zero for a container that is not bound to a vessel.
type RegisterContainerSpec struct {
	Weight        int
	CargoType     string
	ContainerType string
	Size          string
	VesselID      uint64
	Location      string
	Destination   string
}

// RegisterContainerCommand registers a container owned by the caller.
type RegisterContainerCommand struct {
	caller kernel.Principal
	spec   cargo.Spec

	guard guard.ConstructorGuard
}

func NewRegisterContainerCommand(caller string, spec RegisterContainerSpec) (RegisterContainerCommand, error) {
	principal, err := kernel.NewPrincipal(caller)
	if err != nil {
		return RegisterContainerCommand{}, err
	}

	cmd := RegisterContainerCommand{
		caller: principal,
		spec: cargo.Spec{
			Weight:        spec.Weight,
			CargoType:     spec.CargoType,
			ContainerType: spec.ContainerType,
			Size:          spec.Size,
			Location:      spec.Location,
			Destination:   spec.Destination,
		},
		guard: guard.NewConstructorGuard(),
	}
	if spec.VesselID != 0 {
		id := kernel.ID(spec.VesselID)
		cmd.spec.VesselID = &id
	}

	return cmd, nil
}

func (c RegisterContainerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterContainerCommandIsNotConstructed)
}

func (c RegisterContainerCommand) Caller() kernel.Principal { return c.caller }

func (c RegisterContainerCommand) Spec() cargo.Spec { return c.spec }
