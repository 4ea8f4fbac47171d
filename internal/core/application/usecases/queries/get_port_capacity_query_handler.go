package queries

import (
	"context"

	"seaport/internal/core/domain/services"
	"seaport/internal/core/ports"

	"gorm.io/gorm"
)

type GetPortCapacityQueryHandler struct {
	db         *gorm.DB
	calculator services.CapacityCalculator
}

func NewGetPortCapacityQueryHandler(db *gorm.DB) GetPortCapacityQueryHandler {
	return GetPortCapacityQueryHandler{db: db, calculator: services.NewCapacityCalculator()}
}

func (h GetPortCapacityQueryHandler) Handle(
	ctx context.Context,
	query GetPortCapacityQuery,
) (GetPortCapacityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPortCapacityQueryResponse{}, err
	}

	var totalBerths int
	if _, err := queryOne(ctx, h.db, `SELECT COUNT(*) FROM berths`, nil, &totalBerths); err != nil {
		return GetPortCapacityQueryResponse{}, err
	}

	var inUse int64
	if _, err := queryOne(ctx, h.db, `
		SELECT value
		FROM counters
		WHERE name = ?
	`, []any{ports.BerthsInUse}, &inUse); err != nil {
		return GetPortCapacityQueryResponse{}, err
	}

	c := h.calculator.PortCapacity(totalBerths, inUse)
	return GetPortCapacityQueryResponse{
		TotalBerths:    c.TotalBerths,
		CurrentLoad:    c.CurrentLoad,
		AvailableSlots: c.AvailableSlots,
		Utilization:    c.Utilization,
	}, nil
}
