package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrCompleteOperationCommandIsNotConstructed = errors.New(
	"CompleteOperationCommand must be created via NewCompleteOperationCommand constructor",
)

// CompleteOperationCommand closes an in-progress operation. Only the
// operator that started it may issue it.
type CompleteOperationCommand struct {
	caller      kernel.Principal
	operationID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteOperationCommand(caller string, operationID uint64) (CompleteOperationCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	id, idErr := kernel.NewID(operationID)
	if err := errors.Join(callerErr, idErr); err != nil {
		return CompleteOperationCommand{}, err
	}
	return CompleteOperationCommand{caller: principal, operationID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteOperationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOperationCommandIsNotConstructed)
}

func (c CompleteOperationCommand) Caller() kernel.Principal { return c.caller }

func (c CompleteOperationCommand) OperationID() kernel.ID { return c.operationID }
