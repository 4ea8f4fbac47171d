package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/pkg/guard"
)

var ErrRegisterBerthCommandIsNotConstructed = errors.New(
	"RegisterBerthCommand must be created via NewRegisterBerthCommand constructor",
)

// RegisterBerthSpec carries the physical and commercial attributes of a new berth.
type RegisterBerthSpec struct {
	Name           string
	MaxLength      int
	MaxBeam        int
	MaxDraft       int
	SupportedClass string
	CraneCapacity  int
	HourlyRate     int64
}

// RegisterBerthCommand adds a berth to the port. Only port operators may issue it.
type RegisterBerthCommand struct { //nolint:recvcheck //using for validation
	caller         kernel.Principal
	name           string
	envelope       kernel.Dimensions
	supportedClass vessel.Class
	craneCapacity  int
	hourlyRate     int64

	guard guard.ConstructorGuard
}

func NewRegisterBerthCommand(caller string, spec RegisterBerthSpec) (RegisterBerthCommand, error) {
	cmd := RegisterBerthCommand{
		name:          spec.Name,
		craneCapacity: spec.CraneCapacity,
		hourlyRate:    spec.HourlyRate,
		guard:         guard.NewConstructorGuard(),
	}

	principal, callerErr := kernel.NewPrincipal(caller)
	envelope, envelopeErr := kernel.NewDimensions(spec.MaxLength, spec.MaxBeam, spec.MaxDraft)
	class, classErr := vessel.ParseClass(spec.SupportedClass)

	if err := errors.Join(callerErr, envelopeErr, classErr); err != nil {
		return RegisterBerthCommand{}, err
	}

	cmd.caller = principal
	cmd.envelope = envelope
	cmd.supportedClass = class
	return cmd, nil
}

func (c RegisterBerthCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBerthCommandIsNotConstructed)
}

func (c RegisterBerthCommand) Caller() kernel.Principal { return c.caller }

func (c RegisterBerthCommand) Name() string { return c.name }

func (c RegisterBerthCommand) Envelope() kernel.Dimensions { return c.envelope }

func (c RegisterBerthCommand) SupportedClass() vessel.Class { return c.supportedClass }

func (c RegisterBerthCommand) CraneCapacity() int { return c.craneCapacity }

func (c RegisterBerthCommand) HourlyRate() int64 { return c.hourlyRate }
