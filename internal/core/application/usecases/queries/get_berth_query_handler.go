package queries

import (
	"context"

	"seaport/internal/core/domain/model/vessel"

	"gorm.io/gorm"
)

type GetBerthQueryHandler struct {
	db *gorm.DB
}

func NewGetBerthQueryHandler(db *gorm.DB) GetBerthQueryHandler {
	return GetBerthQueryHandler{db: db}
}

// Handle returns nil when the berth does not exist.
func (h GetBerthQueryHandler) Handle(ctx context.Context, query GetBerthQuery) (*GetBerthQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp  GetBerthQueryResponse
		class int
	)
	found, err := queryOne(ctx, h.db, `
		SELECT
			id,
			name,
			max_length,
			max_beam,
			max_draft,
			supported_class,
			crane_capacity,
			hourly_rate,
			operational,
			current_vessel_id
		FROM berths
		WHERE id = ?
	`, []any{uint64(query.BerthID())},
		&resp.ID,
		&resp.Name,
		&resp.MaxLength,
		&resp.MaxBeam,
		&resp.MaxDraft,
		&class,
		&resp.CraneCapacity,
		&resp.HourlyRate,
		&resp.Operational,
		&resp.CurrentVesselID,
	)
	if err != nil || !found {
		return nil, err
	}

	resp.SupportedClass = vessel.Class(class).String()
	return &resp, nil
}
