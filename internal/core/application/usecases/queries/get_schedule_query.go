package queries

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrGetScheduleQueryIsNotConstructed = errors.New("GetScheduleQuery must be created via NewGetScheduleQuery constructor")

type GetScheduleQuery struct {
	scheduleID kernel.ID
	guard      guard.ConstructorGuard
}

func NewGetScheduleQuery(scheduleID uint64) (GetScheduleQuery, error) {
	id, err := kernel.NewID(scheduleID)
	if err != nil {
		return GetScheduleQuery{}, err
	}
	return GetScheduleQuery{scheduleID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleQueryIsNotConstructed)
}

func (q GetScheduleQuery) ScheduleID() kernel.ID {
	return q.scheduleID
}

// GetScheduleQueryResponse is the schedule read model. EstimatedDuration is
// the requested window in ticks.
type GetScheduleQueryResponse struct {
	ID                 uint64 `json:"id"`
	VesselID           uint64 `json:"vesselId"`
	BerthID            uint64 `json:"berthId"`
	RequestedArrival   int64  `json:"requestedArrival"`
	RequestedDeparture int64  `json:"requestedDeparture"`
	ActualArrival      *int64 `json:"actualArrival"`
	ActualDeparture    *int64 `json:"actualDeparture"`
	Status             string `json:"status"`
	Priority           int    `json:"priority"`
	EstimatedDuration  int64  `json:"estimatedDuration"`
}
