// Package metricrepo stores the latest value of each performance metric in
// the performance_metrics table.
package metricrepo

import (
	"context"

	"seaport/internal/core/domain/model/metric"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PerformanceMetricDTO struct {
	Name       string `gorm:"primaryKey"`
	Value      float64
	Target     float64
	RecordedBy string
	RecordedAt int64
}

func (PerformanceMetricDTO) TableName() string {
	return "performance_metrics"
}

type aggregateTracker interface {
	TrackAggregate(kind, id string, aggregate any)
}

// GormMetricRepository implements ports.MetricRepository using GORM.
type GormMetricRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMetricRepository(db *gorm.DB, tracker aggregateTracker) *GormMetricRepository {
	return &GormMetricRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save inserts the metric or replaces the stored value and target.
func (r *GormMetricRepository) Save(ctx context.Context, m *metric.PerformanceMetric) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := PerformanceMetricDTO{
		Name:       m.Name(),
		Value:      m.Value(),
		Target:     m.Target(),
		RecordedBy: m.RecordedBy().String(),
		RecordedAt: int64(m.RecordedAt()),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "target", "recorded_by", "recorded_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate("metric", m.Name(), m)
	return nil
}
