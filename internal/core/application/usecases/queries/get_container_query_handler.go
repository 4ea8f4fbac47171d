package queries

import (
	"context"

	"seaport/internal/core/domain/model/cargo"

	"gorm.io/gorm"
)

type GetContainerQueryHandler struct {
	db *gorm.DB
}

func NewGetContainerQueryHandler(db *gorm.DB) GetContainerQueryHandler {
	return GetContainerQueryHandler{db: db}
}

// Handle returns nil when the container does not exist.
func (h GetContainerQueryHandler) Handle(ctx context.Context, query GetContainerQuery) (*GetContainerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp   GetContainerQueryResponse
		status int
	)
	found, err := queryOne(ctx, h.db, `
		SELECT
			id,
			weight,
			cargo_type,
			container_type,
			size,
			owner,
			vessel_id,
			location,
			destination,
			status,
			handling_priority
		FROM containers
		WHERE id = ?
	`, []any{uint64(query.ContainerID())},
		&resp.ID,
		&resp.Weight,
		&resp.CargoType,
		&resp.ContainerType,
		&resp.Size,
		&resp.Owner,
		&resp.VesselID,
		&resp.Location,
		&resp.Destination,
		&status,
		&resp.HandlingPriority,
	)
	if err != nil || !found {
		return nil, err
	}

	resp.Status = cargo.Status(status).String()
	return &resp, nil
}
