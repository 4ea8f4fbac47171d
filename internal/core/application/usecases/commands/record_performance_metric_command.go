package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrRecordPerformanceMetricCommandIsNotConstructed = errors.New(
	"RecordPerformanceMetricCommand must be created via NewRecordPerformanceMetricCommand constructor",
)

// RecordPerformanceMetricCommand stores the latest value of a named metric
// against its target.
type RecordPerformanceMetricCommand struct {
	caller kernel.Principal
	name   string
	value  float64
	target float64

	guard guard.ConstructorGuard
}

func NewRecordPerformanceMetricCommand(
	caller string,
	name string,
	value, target float64,
) (RecordPerformanceMetricCommand, error) {
	principal, err := kernel.NewPrincipal(caller)
	if err != nil {
		return RecordPerformanceMetricCommand{}, err
	}
	return RecordPerformanceMetricCommand{
		caller: principal,
		name:   name,
		value:  value,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPerformanceMetricCommand) Validate() error {
	return c.guard.Validate(ErrRecordPerformanceMetricCommandIsNotConstructed)
}

func (c RecordPerformanceMetricCommand) Caller() kernel.Principal { return c.caller }

func (c RecordPerformanceMetricCommand) Name() string { return c.name }

func (c RecordPerformanceMetricCommand) Value() float64 { return c.value }

func (c RecordPerformanceMetricCommand) Target() float64 { return c.target }
