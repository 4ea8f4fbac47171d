package queries

import (
	"context"

	"seaport/internal/core/domain/model/operation"

	"gorm.io/gorm"
)

type GetOperationQueryHandler struct {
	db *gorm.DB
}

func NewGetOperationQueryHandler(db *gorm.DB) GetOperationQueryHandler {
	return GetOperationQueryHandler{db: db}
}

// Handle returns nil when the operation does not exist.
func (h GetOperationQueryHandler) Handle(ctx context.Context, query GetOperationQuery) (*GetOperationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp           GetOperationQueryResponse
		opType, status int
	)
	found, err := queryOne(ctx, h.db, `
		SELECT
			id,
			type,
			container_id,
			vessel_id,
			equipment_type,
			unit,
			operator,
			start_tick,
			end_tick,
			status,
			efficiency
		FROM operations
		WHERE id = ?
	`, []any{uint64(query.OperationID())},
		&resp.ID,
		&opType,
		&resp.ContainerID,
		&resp.VesselID,
		&resp.EquipmentType,
		&resp.Unit,
		&resp.Operator,
		&resp.Start,
		&resp.End,
		&status,
		&resp.Efficiency,
	)
	if err != nil || !found {
		return nil, err
	}

	resp.Type = operation.Type(opType).String()
	resp.Status = operation.Status(status).String()
	return &resp, nil
}
