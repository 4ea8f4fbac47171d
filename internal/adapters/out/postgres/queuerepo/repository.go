package queuerepo

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/queue"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQueueRepository implements ports.QueueRepository using GORM.
type GormQueueRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

func NewGormQueueRepository(db *gorm.DB, tracker aggregateTracker) *GormQueueRepository {
	return &GormQueueRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormQueueRepository) Add(ctx context.Context, entry *queue.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("queue", entry.Position().String(), entry)
	return nil
}

func (r *GormQueueRepository) Update(ctx context.Context, entry *queue.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(&QueueEntryDTO{}).
		Where("position = ?", dto.Position).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("queue entry", entry.Position().String())
	}

	r.tracker.TrackAggregate("queue", entry.Position().String(), entry)
	return nil
}

// GetWaiting returns the unserved entries in service order without locking
// them. Entries change only under their vessel's row lock.
func (r *GormQueueRepository) GetWaiting(ctx context.Context) ([]*queue.Entry, error) {
	var dtos []QueueEntryDTO
	err := r.db.WithContext(ctx).
		Where("served = ?", false).
		Order("priority DESC, position ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*queue.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *GormQueueRepository) GetWaitingByVessel(ctx context.Context, vesselID kernel.ID) (*queue.Entry, error) {
	var dto QueueEntryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vessel_id = ? AND served = ?", uint64(vesselID), false).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("queue entry of vessel", vesselID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
