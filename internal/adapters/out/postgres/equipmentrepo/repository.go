package equipmentrepo

import (
	"context"
	"errors"

	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEquipmentRepository implements ports.EquipmentRepository using GORM.
type GormEquipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

func NewGormEquipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormEquipmentRepository {
	return &GormEquipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormEquipmentRepository) Add(ctx context.Context, inventory *equipment.Inventory) error {
	if err := inventory.Validate(); err != nil {
		return err
	}

	dto := fromDomain(inventory)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("equipment", inventory.Type(), inventory)
	return nil
}

func (r *GormEquipmentRepository) Update(ctx context.Context, inventory *equipment.Inventory) error {
	if err := inventory.Validate(); err != nil {
		return err
	}

	dto := fromDomain(inventory)
	result := r.db.WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("equipment_type = ?", dto.Type).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("equipment type", inventory.Type())
	}

	r.tracker.TrackAggregate("equipment", inventory.Type(), inventory)
	return nil
}

// Get retrieves the inventory of an equipment type and locks it. The type
// tag is normalised before the lookup.
func (r *GormEquipmentRepository) Get(ctx context.Context, equipmentType string) (*equipment.Inventory, error) {
	key := equipment.NormalizeType(equipmentType)
	if key == "" {
		return nil, equipment.ErrTypeIsRequired
	}

	var dto InventoryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "equipment_type = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("equipment type", key)
		}
		return nil, err
	}

	return toDomain(dto)
}
