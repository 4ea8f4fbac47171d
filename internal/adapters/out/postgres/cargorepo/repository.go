package cargorepo

import (
	"context"
	"errors"
	"fmt"

	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

// GormContainerRepository implements ports.ContainerRepository using GORM.
type GormContainerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormContainerRepository(db *gorm.DB, tracker aggregateTracker) *GormContainerRepository {
	return &GormContainerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormContainerRepository) Add(ctx context.Context, aggregate *cargo.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := containerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("container", aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormContainerRepository) Update(ctx context.Context, aggregate *cargo.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := containerFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ContainerDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("container", aggregate.ID().String())
	}

	r.tracker.TrackAggregate("container", aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormContainerRepository) Get(ctx context.Context, id kernel.ID) (*cargo.Container, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", uint64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", id.String())
		}
		return nil, err
	}

	return containerToDomain(dto)
}

// GormCheckpointRepository appends checkpoint records. Checkpoints are never
// updated or deleted.
type GormCheckpointRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCheckpointRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckpointRepository {
	return &GormCheckpointRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add checks for an existing label before inserting. The container row is
// locked by the caller, so the check and the insert cannot interleave with
// another checkpoint of the same container.
func (r *GormCheckpointRepository) Add(ctx context.Context, checkpoint *cargo.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	dto := checkpointFromDomain(checkpoint)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CheckpointDTO{}).
		Where("container_id = ? AND label = ?", dto.ContainerID, dto.Label).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: container %d already passed %q", cargo.ErrCheckpointExists, dto.ContainerID, dto.Label)
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("checkpoint", checkpoint.ID().String(), checkpoint)
	return nil
}
