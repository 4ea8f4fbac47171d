package berthrepo

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBerthRepository implements ports.BerthRepository using GORM.
type GormBerthRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

func NewGormBerthRepository(db *gorm.DB, tracker aggregateTracker) *GormBerthRepository {
	return &GormBerthRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBerthRepository) Add(ctx context.Context, aggregate *berth.Berth) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("berth", aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormBerthRepository) Update(ctx context.Context, aggregate *berth.Berth) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BerthDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("berth", aggregate.ID().String())
	}

	r.tracker.TrackAggregate("berth", aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a berth by ID and locks its row.
func (r *GormBerthRepository) Get(ctx context.Context, id kernel.ID) (*berth.Berth, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BerthDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", uint64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("berth", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFree returns every operational berth without a vessel. The rows are
// not locked; callers lock the berth they pick with Get and check it again.
func (r *GormBerthRepository) GetAllFree(ctx context.Context) ([]*berth.Berth, error) {
	var dtos []BerthDTO
	err := r.db.WithContext(ctx).
		Where("current_vessel_id IS NULL AND operational = ?", true).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	berths := make([]*berth.Berth, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		berths = append(berths, b)
	}

	return berths, nil
}
