// Package ports defines the contracts between the port domain and its
// infrastructure: repositories bound to a unit of work, the authorization
// gate, the logical clock and the counter service.
package ports

import (
	"context"

	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/metric"
	"seaport/internal/core/domain/model/operation"
	"seaport/internal/core/domain/model/queue"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/model/vessel"
)

// Every Get locks the returned row until the unit of work ends, so two
// transactions touching the same entity run one after the other. List reads
// (GetAllFree, GetWaiting, GetActiveBy*) take no locks.
//
// Handlers lock rows in one order to stay free of deadlocks:
//
//	schedule, vessel, berth, queue entry, then the counter row
//	operation, container, then equipment
//
// A berth's schedules change only under the berth lock, and a vessel's
// schedules and queue entries only under the vessel lock.

// VesselRepository persists vessel aggregates.
type VesselRepository interface {
	Add(ctx context.Context, aggregate *vessel.Vessel) error
	Update(ctx context.Context, aggregate *vessel.Vessel) error
	// Get returns an errs.ObjectNotFoundError when the vessel does not exist.
	Get(ctx context.Context, id kernel.ID) (*vessel.Vessel, error)
}

// BerthRepository persists berth aggregates.
type BerthRepository interface {
	Add(ctx context.Context, aggregate *berth.Berth) error
	Update(ctx context.Context, aggregate *berth.Berth) error
	Get(ctx context.Context, id kernel.ID) (*berth.Berth, error)
	// GetAllFree returns unoccupied operational berths ordered by id.
	GetAllFree(ctx context.Context) ([]*berth.Berth, error)
}

// ScheduleRepository persists vessel-berth schedules.
type ScheduleRepository interface {
	Add(ctx context.Context, aggregate *schedule.Schedule) error
	Update(ctx context.Context, aggregate *schedule.Schedule) error
	Get(ctx context.Context, id kernel.ID) (*schedule.Schedule, error)
	GetActiveByVessel(ctx context.Context, vesselID kernel.ID) ([]*schedule.Schedule, error)
	GetActiveByBerth(ctx context.Context, berthID kernel.ID) ([]*schedule.Schedule, error)
}

// QueueRepository persists the vessel waiting queue.
type QueueRepository interface {
	Add(ctx context.Context, entry *queue.Entry) error
	Update(ctx context.Context, entry *queue.Entry) error
	// GetWaiting returns unserved entries, highest priority first, then by position.
	GetWaiting(ctx context.Context) ([]*queue.Entry, error)
	// GetWaitingByVessel returns the unserved entry of a vessel.
	GetWaitingByVessel(ctx context.Context, vesselID kernel.ID) (*queue.Entry, error)
}

// EquipmentRepository persists one inventory record per equipment type.
type EquipmentRepository interface {
	Add(ctx context.Context, inventory *equipment.Inventory) error
	Update(ctx context.Context, inventory *equipment.Inventory) error
	Get(ctx context.Context, equipmentType string) (*equipment.Inventory, error)
}

// ContainerRepository persists container aggregates.
type ContainerRepository interface {
	Add(ctx context.Context, aggregate *cargo.Container) error
	Update(ctx context.Context, aggregate *cargo.Container) error
	Get(ctx context.Context, id kernel.ID) (*cargo.Container, error)
}

// CheckpointRepository appends immutable movement records.
type CheckpointRepository interface {
	// Add fails with an errs.AlreadyExistsError when the container already has
	// a checkpoint with the same label.
	Add(ctx context.Context, checkpoint *cargo.Checkpoint) error
}

// OperationRepository persists cargo operations.
type OperationRepository interface {
	Add(ctx context.Context, aggregate *operation.Operation) error
	Update(ctx context.Context, aggregate *operation.Operation) error
	Get(ctx context.Context, id kernel.ID) (*operation.Operation, error)
}

// MetricRepository stores the latest value of each performance metric.
type MetricRepository interface {
	Save(ctx context.Context, m *metric.PerformanceMetric) error
}

// RoleRepository is the role-assignment table behind the authorization gate.
type RoleRepository interface {
	Grant(ctx context.Context, principal kernel.Principal, role kernel.Role) error
	Revoke(ctx context.Context, principal kernel.Principal, role kernel.Role) error
}
