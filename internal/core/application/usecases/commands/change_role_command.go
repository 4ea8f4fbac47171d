package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrChangeRoleCommandIsNotConstructed = errors.New(
	"ChangeRoleCommand must be created via NewChangeRoleCommand constructor",
)

// ChangeRoleCommand grants or revokes a role of a principal. Only the
// contract owner may issue it.
type ChangeRoleCommand struct {
	caller    kernel.Principal
	principal kernel.Principal
	role      kernel.Role

	guard guard.ConstructorGuard
}

func NewChangeRoleCommand(caller, principal, role string) (ChangeRoleCommand, error) {
	c, callerErr := kernel.NewPrincipal(caller)
	p, principalErr := kernel.NewPrincipal(principal)
	r, roleErr := kernel.ParseRole(role)
	if err := errors.Join(callerErr, principalErr, roleErr); err != nil {
		return ChangeRoleCommand{}, err
	}
	return ChangeRoleCommand{caller: c, principal: p, role: r, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeRoleCommandIsNotConstructed)
}

func (c ChangeRoleCommand) Caller() kernel.Principal { return c.caller }

func (c ChangeRoleCommand) Principal() kernel.Principal { return c.principal }

func (c ChangeRoleCommand) Role() kernel.Role { return c.role }
