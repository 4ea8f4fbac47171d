// Package metric provides operator-recorded performance metrics compared
// against a target.
package metric

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var (
	ErrMetricIsNotConstructed = errors.New("PerformanceMetric must be created via NewPerformanceMetric constructor")
	ErrNameIsRequired         = errs.NewValueIsRequiredError("metric name")
)

// PerformanceMetric is the latest recorded value of a named metric.
// Recording the same name again replaces the value and target.
type PerformanceMetric struct {
	name       string
	value      float64
	target     float64
	recordedBy kernel.Principal
	recordedAt kernel.Tick
	guard      guard.ConstructorGuard
}

func NewPerformanceMetric(
	name string,
	value, target float64,
	recordedBy kernel.Principal,
	recordedAt kernel.Tick,
) (*PerformanceMetric, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	var valueErr error
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		valueErr = errs.NewValueIsInvalidErrorWithCause("metric value", fmt.Errorf("%v is not a finite non-negative number", value))
	}
	var targetErr error
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		targetErr = errs.NewValueIsInvalidErrorWithCause("metric target", fmt.Errorf("%v is not greater than 0", target))
	}

	if err := errors.Join(nameErr, valueErr, targetErr, recordedBy.Validate()); err != nil {
		return nil, err
	}

	return &PerformanceMetric{
		name:       name,
		value:      value,
		target:     target,
		recordedBy: recordedBy,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (m *PerformanceMetric) Validate() error {
	if m == nil {
		return ErrMetricIsNotConstructed
	}
	return m.guard.Validate(ErrMetricIsNotConstructed)
}

func (m *PerformanceMetric) Name() string { return m.name }

func (m *PerformanceMetric) Value() float64 { return m.value }

func (m *PerformanceMetric) Target() float64 { return m.target }

func (m *PerformanceMetric) RecordedBy() kernel.Principal { return m.recordedBy }

func (m *PerformanceMetric) RecordedAt() kernel.Tick { return m.recordedAt }

// Ratio is the value as a percentage of the target.
func (m *PerformanceMetric) Ratio() float64 {
	return 100 * m.value / m.target
}
