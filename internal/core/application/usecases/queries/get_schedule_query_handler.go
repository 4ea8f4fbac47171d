package queries

import (
	"context"

	"seaport/internal/core/domain/model/schedule"

	"gorm.io/gorm"
)

type GetScheduleQueryHandler struct {
	db *gorm.DB
}

func NewGetScheduleQueryHandler(db *gorm.DB) GetScheduleQueryHandler {
	return GetScheduleQueryHandler{db: db}
}

// Handle returns nil when the schedule does not exist.
func (h GetScheduleQueryHandler) Handle(ctx context.Context, query GetScheduleQuery) (*GetScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp   GetScheduleQueryResponse
		status int
	)
	found, err := queryOne(ctx, h.db, `
		SELECT
			id,
			vessel_id,
			berth_id,
			requested_arrival,
			requested_departure,
			actual_arrival,
			actual_departure,
			status,
			priority
		FROM schedules
		WHERE id = ?
	`, []any{uint64(query.ScheduleID())},
		&resp.ID,
		&resp.VesselID,
		&resp.BerthID,
		&resp.RequestedArrival,
		&resp.RequestedDeparture,
		&resp.ActualArrival,
		&resp.ActualDeparture,
		&status,
		&resp.Priority,
	)
	if err != nil || !found {
		return nil, err
	}

	resp.Status = schedule.Status(status).String()
	resp.EstimatedDuration = resp.RequestedDeparture - resp.RequestedArrival
	return &resp, nil
}
