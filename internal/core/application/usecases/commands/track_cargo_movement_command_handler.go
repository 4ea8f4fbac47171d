package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"

	"github.com/google/uuid"
)

// TrackCargoMovementCommandHandler appends an immutable checkpoint and moves
// the container. A label can be recorded once per container; a repeat fails
// with cargo.ErrCheckpointExists.
type TrackCargoMovementCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
}

func NewTrackCargoMovementCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) TrackCargoMovementCommandHandler {
	return TrackCargoMovementCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
	}
}

// Handle returns the id of the stored checkpoint.
func (h TrackCargoMovementCommandHandler) Handle(
	ctx context.Context,
	cmd TrackCargoMovementCommand,
) (uuid.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return uuid.Nil, err
	}
	privileged, err := h.roles.holdsAny(ctx, cmd.Caller(), kernel.RolePortOperator, kernel.RoleAuthorizedHandler)
	if err != nil {
		return uuid.Nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return uuid.Nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	c, err := containerRepo.Get(ctx, cmd.ContainerID())
	if err != nil {
		return uuid.Nil, err
	}
	action := fmt.Sprintf("track container %s", c.ID())
	if err = ownerOrRole(privileged, cmd.Caller(), c.Owner(), action); err != nil {
		return uuid.Nil, err
	}

	checkpoint, err := cargo.NewCheckpoint(
		uuid.New(),
		c.ID(),
		cmd.Label(),
		cmd.Location(),
		cmd.Status(),
		cmd.Notes(),
		cmd.Caller(),
		h.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, err
	}
	if err = c.Move(cmd.Location(), cmd.Status()); err != nil {
		return uuid.Nil, err
	}

	if err = uow.CheckpointRepository().Add(ctx, checkpoint); err != nil {
		return uuid.Nil, err
	}
	if err = containerRepo.Update(ctx, c); err != nil {
		return uuid.Nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return uuid.Nil, err
	}

	return checkpoint.ID(), nil
}
