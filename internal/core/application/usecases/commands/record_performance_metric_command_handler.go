package commands

import (
	"context"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/metric"
	"seaport/internal/core/ports"
)

type RecordPerformanceMetricCommandHandler struct {
	uowFactory UoWFactory
	roles      roleCheck
	clock      ports.Clock
}

func NewRecordPerformanceMetricCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	clock ports.Clock,
) RecordPerformanceMetricCommandHandler {
	return RecordPerformanceMetricCommandHandler{
		uowFactory: uowFactory,
		roles:      roleCheck{gate: gate},
		clock:      clock,
	}
}

func (h RecordPerformanceMetricCommandHandler) Handle(ctx context.Context, cmd RecordPerformanceMetricCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.roles.require(ctx, cmd.Caller(), "record performance metric", kernel.RolePortOperator); err != nil {
		return err
	}

	m, err := metric.NewPerformanceMetric(cmd.Name(), cmd.Value(), cmd.Target(), cmd.Caller(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MetricRepository().Save(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
