package operationrepo

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/operation"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOperationRepository implements ports.OperationRepository using GORM.
type GormOperationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

func NewGormOperationRepository(db *gorm.DB, tracker aggregateTracker) *GormOperationRepository {
	return &GormOperationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOperationRepository) Add(ctx context.Context, aggregate *operation.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("operation", aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormOperationRepository) Update(ctx context.Context, aggregate *operation.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OperationDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("operation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate("operation", aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormOperationRepository) Get(ctx context.Context, id kernel.ID) (*operation.Operation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OperationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", uint64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
