package commands

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/queue"
	"seaport/internal/core/ports"
)

// AddToQueueCommandHandler appends a vessel to the waiting queue at the next
// queue position. The estimated wait halves for vessels above near-term priority.
type AddToQueueCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
}

func NewAddToQueueCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) AddToQueueCommandHandler {
	return AddToQueueCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
	}
}

// Handle returns the queue position given to the vessel.
func (h AddToQueueCommandHandler) Handle(ctx context.Context, cmd AddToQueueCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	privileged, err := h.roles.holdsAny(ctx, cmd.Caller(), kernel.RolePortOperator)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vesselRepo := uow.VesselRepository()
	v, err := vesselRepo.Get(ctx, cmd.VesselID())
	if err != nil {
		return 0, err
	}
	action := fmt.Sprintf("queue vessel %s", v.ID())
	if err = ownerOrRole(privileged, cmd.Caller(), v.Owner(), action); err != nil {
		return 0, err
	}

	if err = v.Enqueue(); err != nil {
		return 0, err
	}

	position, err := uow.CounterRepository().NextID(ctx, kernel.QueueClass)
	if err != nil {
		return 0, err
	}
	entry, err := queue.NewEntry(position, v.ID(), v.Priority(), h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = vesselRepo.Update(ctx, v); err != nil {
		return 0, err
	}
	if err = uow.QueueRepository().Add(ctx, entry); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return position, nil
}
