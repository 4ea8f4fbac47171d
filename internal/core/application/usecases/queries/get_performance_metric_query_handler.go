package queries

import (
	"context"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/metric"
	"seaport/internal/core/domain/model/operation"
	"seaport/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetPerformanceMetricQueryHandler struct {
	db         *gorm.DB
	calculator services.CapacityCalculator
}

func NewGetPerformanceMetricQueryHandler(db *gorm.DB) GetPerformanceMetricQueryHandler {
	return GetPerformanceMetricQueryHandler{db: db, calculator: services.NewCapacityCalculator()}
}

// Handle returns nil when the metric was never recorded.
func (h GetPerformanceMetricQueryHandler) Handle(
	ctx context.Context,
	query GetPerformanceMetricQuery,
) (*GetPerformanceMetricQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		name, recordedBy string
		value, target    float64
		recordedAt       int64
	)
	found, err := queryOne(ctx, h.db, `
		SELECT
			name,
			value,
			target,
			recorded_by,
			recorded_at
		FROM performance_metrics
		WHERE name = ?
	`, []any{query.Name()}, &name, &value, &target, &recordedBy, &recordedAt)
	if err != nil || !found {
		return nil, err
	}

	m, err := metric.NewPerformanceMetric(name, value, target, kernel.Principal(recordedBy), kernel.Tick(recordedAt))
	if err != nil {
		return nil, err
	}

	scores, err := h.completedEfficiencies(ctx)
	if err != nil {
		return nil, err
	}
	stats := h.calculator.Efficiency(scores)

	return &GetPerformanceMetricQueryResponse{
		Name:            m.Name(),
		Value:           m.Value(),
		Target:          m.Target(),
		EfficiencyRatio: m.Ratio(),
		RecordedBy:      m.RecordedBy().String(),
		RecordedAt:      int64(m.RecordedAt()),
		Operations: OperationEfficiency{
			Count:  stats.Count,
			Mean:   stats.Mean,
			StdDev: stats.StdDev,
			Min:    stats.Min,
			Max:    stats.Max,
		},
	}, nil
}

func (h GetPerformanceMetricQueryHandler) completedEfficiencies(ctx context.Context) ([]float64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT efficiency
		FROM operations
		WHERE status = ?
		ORDER BY id
	`, int(operation.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]float64, 0)
	for rows.Next() {
		var score float64
		if err = rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}

	return scores, rows.Err()
}
