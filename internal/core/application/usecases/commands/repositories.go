// Package commands contains the port operations that modify state.
// Every handler validates its command, checks the caller's roles, then runs
// the mutation inside one unit of work: all changes commit together or none do.
package commands

import (
	"context"

	"seaport/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	VesselRepoFactory interface {
		VesselRepository() ports.VesselRepository
	}

	BerthRepoFactory interface {
		BerthRepository() ports.BerthRepository
	}

	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	QueueRepoFactory interface {
		QueueRepository() ports.QueueRepository
	}

	EquipmentRepoFactory interface {
		EquipmentRepository() ports.EquipmentRepository
	}

	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	CheckpointRepoFactory interface {
		CheckpointRepository() ports.CheckpointRepository
	}

	OperationRepoFactory interface {
		OperationRepository() ports.OperationRepository
	}

	MetricRepoFactory interface {
		MetricRepository() ports.MetricRepository
	}

	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// UoW spans every registry of the port. Handlers take the repositories
	// they need from the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   vesselRepo := uow.VesselRepository()
	//   berthRepo := uow.BerthRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		VesselRepoFactory
		BerthRepoFactory
		ScheduleRepoFactory
		QueueRepoFactory
		EquipmentRepoFactory
		ContainerRepoFactory
		CheckpointRepoFactory
		OperationRepoFactory
		MetricRepoFactory
		RoleRepoFactory
		CounterRepoFactory
	}

	// UoWFactory creates a new unit of work per command.
	UoWFactory interface {
		Create() UoW
	}
)
