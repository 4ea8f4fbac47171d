// Package postgres provides the GORM implementation of the port's unit of work.
//
// One GormUnitOfWork spans one command. Every repository it hands out shares
// the transaction opened by Begin, and every Get issued inside that
// transaction locks the row it reads (SELECT ... FOR UPDATE on PostgreSQL).
// Two commands touching the same vessel, berth, container or equipment type
// are therefore serialised by the database. List queries read without locks;
// the lock order the handlers follow is documented on the ports package.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, nil)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	v, err := uow.VesselRepository().Get(ctx, vesselID)
//	// ... mutate and Update
//
//	return uow.Commit(ctx)
//
// Identifiers drawn from the CounterRepository inside a transaction that
// rolls back are drawn again by the next transaction.
package postgres

import (
	"context"

	"seaport/internal/adapters/out/postgres/berthrepo"
	"seaport/internal/adapters/out/postgres/cargorepo"
	"seaport/internal/adapters/out/postgres/counterrepo"
	"seaport/internal/adapters/out/postgres/equipmentrepo"
	"seaport/internal/adapters/out/postgres/metricrepo"
	"seaport/internal/adapters/out/postgres/operationrepo"
	"seaport/internal/adapters/out/postgres/queuerepo"
	"seaport/internal/adapters/out/postgres/rolerepo"
	"seaport/internal/adapters/out/postgres/schedulerepo"
	"seaport/internal/adapters/out/postgres/vesselrepo"
	"seaport/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.UnitOfWork = (*GormUnitOfWork)(nil)

// TrackedAggregate is an aggregate written during the unit of work.
type TrackedAggregate struct {
	Kind      string
	ID        string
	Aggregate any
}

// CommitObserver is told which aggregates a committed unit of work wrote.
type CommitObserver interface {
	Committed(aggregates []TrackedAggregate)
}

// GormUnitOfWorkFactory creates one GormUnitOfWork per command.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory. observer may be nil.
//
// Example:
//
//	db, err := postgres.NewConnection(cfg)
//	if err != nil {
//	    return err
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db, recorder)
func NewGormUnitOfWorkFactory(db *gorm.DB, observer CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observer: observer}
}

// Create produces a unit of work with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observer:          f.observer,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and records every
// aggregate its repositories add or update.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observer          CommitObserver
	trackedAggregates []TrackedAggregate
}

// Begin opens the transaction. Calling it twice does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes permanent and reports the tracked aggregates to
// the observer. Returns gorm.ErrInvalidTransaction without an open transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if uow.observer != nil && len(uow.trackedAggregates) > 0 {
		uow.observer.Committed(uow.trackedAggregates)
	}
	uow.trackedAggregates = make([]TrackedAggregate, 0)
	return nil
}

// Rollback discards the changes. After a Commit it returns
// gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = make([]TrackedAggregate, 0)
	return err
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(kind, id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		Kind:      kind,
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since Begin.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return uow.trackedAggregates
}

// conn returns the open transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) VesselRepository() ports.VesselRepository {
	return vesselrepo.NewGormVesselRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) BerthRepository() ports.BerthRepository {
	return berthrepo.NewGormBerthRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ScheduleRepository() ports.ScheduleRepository {
	return schedulerepo.NewGormScheduleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) QueueRepository() ports.QueueRepository {
	return queuerepo.NewGormQueueRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EquipmentRepository() ports.EquipmentRepository {
	return equipmentrepo.NewGormEquipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ContainerRepository() ports.ContainerRepository {
	return cargorepo.NewGormContainerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CheckpointRepository() ports.CheckpointRepository {
	return cargorepo.NewGormCheckpointRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OperationRepository() ports.OperationRepository {
	return operationrepo.NewGormOperationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MetricRepository() ports.MetricRepository {
	return metricrepo.NewGormMetricRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RoleRepository() ports.RoleRepository {
	return rolerepo.NewGormRoleRepository(uow.conn())
}

func (uow *GormUnitOfWork) CounterRepository() ports.CounterRepository {
	return counterrepo.NewGormCounterRepository(uow.conn())
}
