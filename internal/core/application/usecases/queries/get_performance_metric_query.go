package queries

import (
	"errors"
	"strings"

	"seaport/internal/core/domain/model/metric"
	"seaport/internal/pkg/guard"
)

var ErrGetPerformanceMetricQueryIsNotConstructed = errors.New(
	"GetPerformanceMetricQuery must be created via NewGetPerformanceMetricQuery constructor",
)

type GetPerformanceMetricQuery struct {
	name  string
	guard guard.ConstructorGuard
}

// NewGetPerformanceMetricQuery matches metric names case-insensitively, the
// same way they are recorded.
func NewGetPerformanceMetricQuery(name string) (GetPerformanceMetricQuery, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return GetPerformanceMetricQuery{}, metric.ErrNameIsRequired
	}
	return GetPerformanceMetricQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPerformanceMetricQuery) Validate() error {
	return q.guard.Validate(ErrGetPerformanceMetricQueryIsNotConstructed)
}

func (q GetPerformanceMetricQuery) Name() string {
	return q.name
}

// OperationEfficiency summarises efficiency scores of completed operations.
type OperationEfficiency struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// GetPerformanceMetricQueryResponse is the latest snapshot of a metric.
// EfficiencyRatio is 100 * Value / Target.
type GetPerformanceMetricQueryResponse struct {
	Name            string              `json:"name"`
	Value           float64             `json:"value"`
	Target          float64             `json:"target"`
	EfficiencyRatio float64             `json:"efficiencyRatio"`
	RecordedBy      string              `json:"recordedBy"`
	RecordedAt      int64               `json:"recordedAt"`
	Operations      OperationEfficiency `json:"operations"`
}
