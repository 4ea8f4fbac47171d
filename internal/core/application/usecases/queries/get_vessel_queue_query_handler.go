package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetVesselQueueQueryHandler struct {
	db *gorm.DB
}

func NewGetVesselQueueQueryHandler(db *gorm.DB) GetVesselQueueQueryHandler {
	return GetVesselQueueQueryHandler{db: db}
}

func (h GetVesselQueueQueryHandler) Handle(
	ctx context.Context,
	query GetVesselQueueQuery,
) ([]GetVesselQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			position,
			vessel_id,
			priority,
			estimated_wait,
			enqueued_at
		FROM queue_entries
		WHERE served = ?
		ORDER BY priority DESC, position ASC
	`, false).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetVesselQueueQueryResponse, 0)
	for rows.Next() {
		var e GetVesselQueueQueryResponse
		if err = rows.Scan(&e.Position, &e.VesselID, &e.Priority, &e.EstimatedWait, &e.EnqueuedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
