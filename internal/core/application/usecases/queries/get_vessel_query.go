package queries

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrGetVesselQueryIsNotConstructed = errors.New("GetVesselQuery must be created via NewGetVesselQuery constructor")

// GetVesselQuery reads one vessel by identifier.
//
// Example:
//
//	query, err := NewGetVesselQuery(7)
//	if err != nil {
//	    return err
//	}
//	v, err := NewGetVesselQueryHandler(db).Handle(ctx, query)
//	if v == nil {
//	    // no such vessel
//	}
type GetVesselQuery struct {
	vesselID kernel.ID
	guard    guard.ConstructorGuard
}

func NewGetVesselQuery(vesselID uint64) (GetVesselQuery, error) {
	id, err := kernel.NewID(vesselID)
	if err != nil {
		return GetVesselQuery{}, err
	}
	return GetVesselQuery{vesselID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVesselQuery) Validate() error {
	return q.guard.Validate(ErrGetVesselQueryIsNotConstructed)
}

func (q GetVesselQuery) VesselID() kernel.ID {
	return q.vesselID
}

// GetVesselQueryResponse is the vessel read model. Class and Status carry
// their tag names.
type GetVesselQueryResponse struct {
	ID                 uint64  `json:"id"`
	Length             int     `json:"length"`
	Beam               int     `json:"beam"`
	Draft              int     `json:"draft"`
	CargoCapacity      int     `json:"cargoCapacity"`
	Class              string  `json:"class"`
	Owner              string  `json:"owner"`
	RequestedArrival   int64   `json:"requestedArrival"`
	Priority           int     `json:"priority"`
	Status             string  `json:"status"`
	BerthID            *uint64 `json:"berthId"`
	ScheduledDeparture *int64  `json:"scheduledDeparture"`
}
