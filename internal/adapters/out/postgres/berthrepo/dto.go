// Package berthrepo maps berth aggregates to the berths table.
package berthrepo

import (
	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
)

// BerthDTO is the row of the berths table. Occupancy is derived from
// CurrentVesselID; there is no separate flag to drift out of sync.
type BerthDTO struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement:false"`
	Name            string
	MaxLength       int
	MaxBeam         int
	MaxDraft        int
	SupportedClass  int
	CraneCapacity   int
	HourlyRate      int64
	Operational     bool
	CurrentVesselID *uint64 `gorm:"uniqueIndex"`
}

func (BerthDTO) TableName() string {
	return "berths"
}

func fromDomain(b *berth.Berth) BerthDTO {
	var current *uint64
	if id := b.CurrentVessel(); id != nil {
		raw := uint64(*id)
		current = &raw
	}

	return BerthDTO{
		ID:              uint64(b.ID()),
		Name:            b.Name(),
		MaxLength:       b.Envelope().Length(),
		MaxBeam:         b.Envelope().Beam(),
		MaxDraft:        b.Envelope().Draft(),
		SupportedClass:  int(b.SupportedClass()),
		CraneCapacity:   b.CraneCapacity(),
		HourlyRate:      b.HourlyRate(),
		Operational:     b.IsOperational(),
		CurrentVesselID: current,
	}
}

func toDomain(dto BerthDTO) (*berth.Berth, error) {
	envelope, err := kernel.NewDimensions(dto.MaxLength, dto.MaxBeam, dto.MaxDraft)
	if err != nil {
		return nil, err
	}

	var current *kernel.ID
	if dto.CurrentVesselID != nil {
		id := kernel.ID(*dto.CurrentVesselID)
		current = &id
	}

	return berth.RestoreBerth(
		kernel.ID(dto.ID),
		dto.Name,
		envelope,
		vessel.Class(dto.SupportedClass),
		dto.CraneCapacity,
		dto.HourlyRate,
		dto.Operational,
		current,
	)
}
