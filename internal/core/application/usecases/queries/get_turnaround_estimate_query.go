package queries

import (
	"errors"
	"strings"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrGetTurnaroundEstimateQueryIsNotConstructed = errors.New(
	"GetTurnaroundEstimateQuery must be created via NewGetTurnaroundEstimateQuery constructor",
)

// GetTurnaroundEstimateQuery estimates how many ticks the vessel of a
// schedule needs to work its full cargo capacity.
type GetTurnaroundEstimateQuery struct {
	scheduleID kernel.ID
	cargoType  string
	guard      guard.ConstructorGuard
}

// NewGetTurnaroundEstimateQuery accepts any cargo type; unrecognised types
// are estimated at the general cargo rate.
func NewGetTurnaroundEstimateQuery(scheduleID uint64, cargoType string) (GetTurnaroundEstimateQuery, error) {
	id, err := kernel.NewID(scheduleID)
	if err != nil {
		return GetTurnaroundEstimateQuery{}, err
	}
	return GetTurnaroundEstimateQuery{
		scheduleID: id,
		cargoType:  strings.ToLower(strings.TrimSpace(cargoType)),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetTurnaroundEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetTurnaroundEstimateQueryIsNotConstructed)
}

func (q GetTurnaroundEstimateQuery) ScheduleID() kernel.ID {
	return q.scheduleID
}

func (q GetTurnaroundEstimateQuery) CargoType() string {
	return q.cargoType
}

// GetTurnaroundEstimateQueryResponse compares the estimate with the window
// the schedule booked. FitsWindow is false when the estimate is longer.
type GetTurnaroundEstimateQueryResponse struct {
	ScheduleID     uint64 `json:"scheduleId"`
	VesselID       uint64 `json:"vesselId"`
	CargoCapacity  int    `json:"cargoCapacity"`
	CargoType      string `json:"cargoType"`
	Throughput     int    `json:"throughput"`
	EstimatedTicks int64  `json:"estimatedTicks"`
	BookedTicks    int64  `json:"bookedTicks"`
	FitsWindow     bool   `json:"fitsWindow"`
}
