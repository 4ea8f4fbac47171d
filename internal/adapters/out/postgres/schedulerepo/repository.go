package schedulerepo

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScheduleRepository implements ports.ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("schedule", aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormScheduleRepository) Update(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ScheduleDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("schedule", aggregate.ID().String())
	}

	r.tracker.TrackAggregate("schedule", aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormScheduleRepository) Get(ctx context.Context, id kernel.ID) (*schedule.Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", uint64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("schedule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByVessel returns the schedules of a vessel that are not completed.
func (r *GormScheduleRepository) GetActiveByVessel(ctx context.Context, vesselID kernel.ID) ([]*schedule.Schedule, error) {
	return r.findActive(ctx, "vessel_id = ?", uint64(vesselID))
}

// GetActiveByBerth returns the schedules booked on a berth that are not completed.
func (r *GormScheduleRepository) GetActiveByBerth(ctx context.Context, berthID kernel.ID) ([]*schedule.Schedule, error) {
	return r.findActive(ctx, "berth_id = ?", uint64(berthID))
}

// findActive reads without row locks. A berth's schedules are created under
// the berth row lock and a vessel's under the vessel row lock, so holding
// that lock is enough for a consistent list.
func (r *GormScheduleRepository) findActive(ctx context.Context, query string, arg any) ([]*schedule.Schedule, error) {
	var dtos []ScheduleDTO
	err := r.db.WithContext(ctx).
		Where(query, arg).
		Where("status <> ?", int(schedule.Completed)).
		Order("requested_arrival, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	schedules := make([]*schedule.Schedule, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}
