package queries

import (
	"context"

	"seaport/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetTurnaroundEstimateQueryHandler struct {
	db         *gorm.DB
	calculator services.CapacityCalculator
}

func NewGetTurnaroundEstimateQueryHandler(db *gorm.DB) GetTurnaroundEstimateQueryHandler {
	return GetTurnaroundEstimateQueryHandler{db: db, calculator: services.NewCapacityCalculator()}
}

// Handle returns nil when the schedule does not exist.
func (h GetTurnaroundEstimateQueryHandler) Handle(
	ctx context.Context,
	query GetTurnaroundEstimateQuery,
) (*GetTurnaroundEstimateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp               GetTurnaroundEstimateQueryResponse
		arrival, departure int64
	)
	found, err := queryOne(ctx, h.db, `
		SELECT
			s.id,
			s.vessel_id,
			v.cargo_capacity,
			s.requested_arrival,
			s.requested_departure
		FROM schedules s
		JOIN vessels v ON v.id = s.vessel_id
		WHERE s.id = ?
	`, []any{uint64(query.ScheduleID())},
		&resp.ScheduleID,
		&resp.VesselID,
		&resp.CargoCapacity,
		&arrival,
		&departure,
	)
	if err != nil || !found {
		return nil, err
	}

	estimate, err := h.calculator.TurnaroundEstimate(resp.CargoCapacity, query.CargoType())
	if err != nil {
		return nil, err
	}

	resp.CargoType = query.CargoType()
	resp.Throughput = h.calculator.Throughput(query.CargoType())
	resp.EstimatedTicks = estimate
	resp.BookedTicks = departure - arrival
	resp.FitsWindow = estimate <= resp.BookedTicks
	return &resp, nil
}
