package queries

import (
	"errors"

	"seaport/internal/pkg/guard"
)

var ErrGetPortCapacityQueryIsNotConstructed = errors.New(
	"GetPortCapacityQuery must be created via NewGetPortCapacityQuery constructor",
)

// GetPortCapacityQuery reads the port-wide berth occupancy.
type GetPortCapacityQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPortCapacityQuery() GetPortCapacityQuery {
	return GetPortCapacityQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPortCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetPortCapacityQueryIsNotConstructed)
}

// GetPortCapacityQueryResponse counts every registered berth, including
// berths taken out of operation.
type GetPortCapacityQueryResponse struct {
	TotalBerths    int     `json:"totalBerths"`
	CurrentLoad    int64   `json:"currentLoad"`
	AvailableSlots int64   `json:"availableSlots"`
	Utilization    float64 `json:"utilization"`
}
