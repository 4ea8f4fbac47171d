package queries

import (
	"context"

	"seaport/internal/core/domain/model/cargo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCargoCheckpointsQueryHandler struct {
	db *gorm.DB
}

func NewGetCargoCheckpointsQueryHandler(db *gorm.DB) GetCargoCheckpointsQueryHandler {
	return GetCargoCheckpointsQueryHandler{db: db}
}

// Handle returns an empty slice for a container without checkpoints,
// including one that does not exist.
func (h GetCargoCheckpointsQueryHandler) Handle(
	ctx context.Context,
	query GetCargoCheckpointsQuery,
) ([]GetCargoCheckpointsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			label,
			location,
			status,
			notes,
			recorded_by,
			recorded_at
		FROM checkpoints
		WHERE container_id = ?
		ORDER BY recorded_at, label
	`, uint64(query.ContainerID())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checkpoints := make([]GetCargoCheckpointsQueryResponse, 0)
	for rows.Next() {
		var (
			cp     GetCargoCheckpointsQueryResponse
			id     uuid.UUID
			status int
		)
		err = rows.Scan(
			&id,
			&cp.Label,
			&cp.Location,
			&status,
			&cp.Notes,
			&cp.RecordedBy,
			&cp.RecordedAt,
		)
		if err != nil {
			return nil, err
		}
		cp.ID = id
		cp.Status = cargo.Status(status).String()
		checkpoints = append(checkpoints, cp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return checkpoints, nil
}
