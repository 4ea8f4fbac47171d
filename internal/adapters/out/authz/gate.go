// Package authz answers role questions from the role_assignments table.
package authz

import (
	"context"

	"seaport/internal/adapters/out/postgres/rolerepo"
	"seaport/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// RoleGate implements ports.AuthorizationGate. The contract owner holds
// every role without an assignment row.
type RoleGate struct {
	roles *rolerepo.GormRoleRepository
	owner kernel.Principal
}

func NewRoleGate(db *gorm.DB, owner kernel.Principal) *RoleGate {
	return &RoleGate{
		roles: rolerepo.NewGormRoleRepository(db),
		owner: owner,
	}
}

func (g *RoleGate) IsAuthorized(ctx context.Context, caller kernel.Principal, role kernel.Role) (bool, error) {
	if err := caller.Validate(); err != nil {
		return false, err
	}
	if err := role.Validate(); err != nil {
		return false, err
	}
	if caller == g.owner {
		return true, nil
	}
	return g.roles.Has(ctx, caller, role)
}

// Owner is the contract owner principal.
func (g *RoleGate) Owner() kernel.Principal {
	return g.owner
}
