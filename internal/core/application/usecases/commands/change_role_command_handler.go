package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"
)

// ChangeRoleCommandHandler maintains the role table behind the authorization gate.
// Granting a held role or revoking a missing one succeeds without change.
type ChangeRoleCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
}

func NewChangeRoleCommandHandler(uowFactory UoWFactory, gate ports.AuthorizationGate) ChangeRoleCommandHandler {
	return ChangeRoleCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
	}
}

func (h ChangeRoleCommandHandler) Grant(ctx context.Context, cmd ChangeRoleCommand) error {
	return h.handle(ctx, cmd, "grant", ports.RoleRepository.Grant)
}

func (h ChangeRoleCommandHandler) Revoke(ctx context.Context, cmd ChangeRoleCommand) error {
	return h.handle(ctx, cmd, "revoke", ports.RoleRepository.Revoke)
}

func (h ChangeRoleCommandHandler) handle(
	ctx context.Context,
	cmd ChangeRoleCommand,
	verb string,
	change func(ports.RoleRepository, context.Context, kernel.Principal, kernel.Role) error,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	action := fmt.Sprintf("%s role %s", verb, cmd.Role())
	if err := h.roles.require(ctx, cmd.Caller(), action, kernel.RoleContractOwner); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := change(uow.RoleRepository(), ctx, cmd.Principal(), cmd.Role()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
