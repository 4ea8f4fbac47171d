package queries

import (
	"context"

	"seaport/internal/core/domain/model/vessel"

	"gorm.io/gorm"
)

type GetVesselQueryHandler struct {
	db *gorm.DB
}

func NewGetVesselQueryHandler(db *gorm.DB) GetVesselQueryHandler {
	return GetVesselQueryHandler{db: db}
}

// Handle returns nil when the vessel does not exist.
func (h GetVesselQueryHandler) Handle(ctx context.Context, query GetVesselQuery) (*GetVesselQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp          GetVesselQueryResponse
		class, status int
	)
	found, err := queryOne(ctx, h.db, `
		SELECT
			id,
			length,
			beam,
			draft,
			cargo_capacity,
			class,
			owner,
			requested_arrival,
			priority,
			status,
			berth_id,
			scheduled_departure
		FROM vessels
		WHERE id = ?
	`, []any{uint64(query.VesselID())},
		&resp.ID,
		&resp.Length,
		&resp.Beam,
		&resp.Draft,
		&resp.CargoCapacity,
		&class,
		&resp.Owner,
		&resp.RequestedArrival,
		&resp.Priority,
		&status,
		&resp.BerthID,
		&resp.ScheduledDeparture,
	)
	if err != nil || !found {
		return nil, err
	}

	resp.Class = vessel.Class(class).String()
	resp.Status = vessel.Status(status).String()
	return &resp, nil
}
