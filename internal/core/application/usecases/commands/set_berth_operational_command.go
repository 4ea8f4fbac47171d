package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrSetBerthOperationalCommandIsNotConstructed = errors.New(
	"SetBerthOperationalCommand must be created via NewSetBerthOperationalCommand constructor",
)

// SetBerthOperationalCommand takes a berth in or out of service.
type SetBerthOperationalCommand struct { //nolint:recvcheck //using for validation
	caller      kernel.Principal
	berthID     kernel.ID
	operational bool

	guard guard.ConstructorGuard
}

func NewSetBerthOperationalCommand(caller string, berthID uint64, operational bool) (SetBerthOperationalCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	id, idErr := kernel.NewID(berthID)
	if err := errors.Join(callerErr, idErr); err != nil {
		return SetBerthOperationalCommand{}, err
	}

	return SetBerthOperationalCommand{
		caller:      principal,
		berthID:     id,
		operational: operational,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SetBerthOperationalCommand) Validate() error {
	return c.guard.Validate(ErrSetBerthOperationalCommandIsNotConstructed)
}

func (c SetBerthOperationalCommand) Caller() kernel.Principal { return c.caller }

func (c SetBerthOperationalCommand) BerthID() kernel.ID { return c.berthID }

func (c SetBerthOperationalCommand) Operational() bool { return c.operational }
