package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one command. All repositories it
// hands out share the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	VesselRepository() VesselRepository
	BerthRepository() BerthRepository
	ScheduleRepository() ScheduleRepository
	QueueRepository() QueueRepository
	EquipmentRepository() EquipmentRepository
	ContainerRepository() ContainerRepository
	CheckpointRepository() CheckpointRepository
	OperationRepository() OperationRepository
	MetricRepository() MetricRepository
	RoleRepository() RoleRepository
	CounterRepository() CounterRepository
}
