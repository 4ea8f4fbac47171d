package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"
	"seaport/internal/pkg/errs"
)

// roleCheck asks the gate whether caller holds any of roles. It runs before
// the unit of work begins so the gate never waits on the command's own locks.
type roleCheck struct {
	gate ports.AuthorizationGate
}

func (c roleCheck) holdsAny(ctx context.Context, caller kernel.Principal, roles ...kernel.Role) (bool, error) {
	for _, role := range roles {
		ok, err := c.gate.IsAuthorized(ctx, caller, role)
		if err != nil {
			return false, fmt.Errorf("authorize %s as %s: %w", caller, role, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// require fails with an errs.UnauthorizedError unless caller holds one of roles.
func (c roleCheck) require(ctx context.Context, caller kernel.Principal, action string, roles ...kernel.Role) error {
	ok, err := c.holdsAny(ctx, caller, roles...)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewUnauthorizedError(caller.String(), action)
	}
	return nil
}

// ownerOrRole completes a check started with holdsAny once the resource owner is known.
func ownerOrRole(privileged bool, caller, owner kernel.Principal, action string) error {
	if privileged || caller == owner {
		return nil
	}
	return errs.NewUnauthorizedError(caller.String(), action)
}
