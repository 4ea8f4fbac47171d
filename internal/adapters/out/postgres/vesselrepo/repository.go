package vesselrepo

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVesselRepository implements ports.VesselRepository using GORM.
type GormVesselRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

func NewGormVesselRepository(db *gorm.DB, tracker aggregateTracker) *GormVesselRepository {
	return &GormVesselRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vessel.
func (r *GormVesselRepository) Add(ctx context.Context, aggregate *vessel.Vessel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("vessel", aggregate.ID().String(), aggregate)
	return nil
}

// Update overwrites every column, so a cleared berth reference is stored as NULL.
func (r *GormVesselRepository) Update(ctx context.Context, aggregate *vessel.Vessel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VesselDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vessel", aggregate.ID().String())
	}

	r.tracker.TrackAggregate("vessel", aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a vessel by ID and locks its row until the transaction ends.
func (r *GormVesselRepository) Get(ctx context.Context, id kernel.ID) (*vessel.Vessel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VesselDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", uint64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vessel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
