// Package counterrepo implements the sequential identifier allocator and the
// global counters on the counters table.
package counterrepo

import (
	"context"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

func (CounterDTO) TableName() string {
	return "counters"
}

// GormCounterRepository implements ports.CounterRepository using GORM.
//
// Every change is a single upsert. On PostgreSQL the upsert locks the
// counter row until the transaction ends, so two transactions never draw the
// same identifier.
type GormCounterRepository struct {
	db *gorm.DB
}

func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// NextID increments the sequence of class and returns the new value.
func (r *GormCounterRepository) NextID(ctx context.Context, class kernel.EntityClass) (kernel.ID, error) {
	if err := class.Validate(); err != nil {
		return 0, err
	}

	name := "seq:" + string(class)
	if err := r.bump(ctx, name); err != nil {
		return 0, err
	}

	value, err := r.Value(ctx, name)
	if err != nil {
		return 0, err
	}
	return kernel.NewID(uint64(value))
}

func (r *GormCounterRepository) Increment(ctx context.Context, name string) error {
	return r.bump(ctx, name)
}

// Decrement lowers a counter that is above zero.
func (r *GormCounterRepository) Decrement(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).
		Model(&CounterDTO{}).
		Where("name = ? AND value > 0", name).
		UpdateColumn("value", gorm.Expr("value - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewCapacityExceededErrorWithCause(name, fmt.Errorf("counter %s is already zero", name))
	}
	return nil
}

// Value reads a counter. A counter that was never written reads as zero.
func (r *GormCounterRepository) Value(ctx context.Context, name string) (int64, error) {
	var dtos []CounterDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&dtos).Error; err != nil {
		return 0, err
	}
	if len(dtos) == 0 {
		return 0, nil
	}
	return dtos[0].Value, nil
}

func (r *GormCounterRepository) bump(ctx context.Context, name string) error {
	dto := CounterDTO{Name: name, Value: 1}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value": gorm.Expr("counters.value + 1"),
			}),
		}).
		Create(&dto).Error
}
