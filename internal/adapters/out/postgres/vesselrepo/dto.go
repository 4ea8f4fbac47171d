// Package vesselrepo maps vessel aggregates to the vessels table.
package vesselrepo

import (
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
)

// VesselDTO is the row of the vessels table. Class and status are stored as
// their integer enum values.
type VesselDTO struct {
	ID                 uint64 `gorm:"primaryKey;autoIncrement:false"`
	Length             int
	Beam               int
	Draft              int
	CargoCapacity      int
	Class              int
	Owner              string `gorm:"index"`
	RequestedArrival   int64
	Priority           int
	Status             int     `gorm:"index"`
	BerthID            *uint64 `gorm:"index"`
	ScheduledDeparture *int64
}

func (VesselDTO) TableName() string {
	return "vessels"
}

func fromDomain(v *vessel.Vessel) VesselDTO {
	var berthID *uint64
	if id := v.Berth(); id != nil {
		raw := uint64(*id)
		berthID = &raw
	}
	var departure *int64
	if t := v.ScheduledDeparture(); t != nil {
		raw := int64(*t)
		departure = &raw
	}

	return VesselDTO{
		ID:                 uint64(v.ID()),
		Length:             v.Dimensions().Length(),
		Beam:               v.Dimensions().Beam(),
		Draft:              v.Dimensions().Draft(),
		CargoCapacity:      v.CargoCapacity(),
		Class:              int(v.Class()),
		Owner:              v.Owner().String(),
		RequestedArrival:   int64(v.RequestedArrival()),
		Priority:           v.Priority(),
		Status:             int(v.Status()),
		BerthID:            berthID,
		ScheduledDeparture: departure,
	}
}

func toDomain(dto VesselDTO) (*vessel.Vessel, error) {
	dims, err := kernel.NewDimensions(dto.Length, dto.Beam, dto.Draft)
	if err != nil {
		return nil, err
	}

	var berthID *kernel.ID
	if dto.BerthID != nil {
		id := kernel.ID(*dto.BerthID)
		berthID = &id
	}
	var departure *kernel.Tick
	if dto.ScheduledDeparture != nil {
		t := kernel.Tick(*dto.ScheduledDeparture)
		departure = &t
	}

	return vessel.RestoreVessel(
		kernel.ID(dto.ID),
		dims,
		dto.CargoCapacity,
		vessel.Class(dto.Class),
		kernel.Principal(dto.Owner),
		kernel.Tick(dto.RequestedArrival),
		dto.Priority,
		vessel.Status(dto.Status),
		berthID,
		departure,
	)
}
