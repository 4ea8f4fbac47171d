// Package schedulerepo maps vessel-berth schedules to the schedules table.
package schedulerepo

import (
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/schedule"
)

type ScheduleDTO struct {
	ID                 uint64 `gorm:"primaryKey;autoIncrement:false"`
	VesselID           uint64 `gorm:"index"`
	BerthID            uint64 `gorm:"index"`
	RequestedArrival   int64
	RequestedDeparture int64
	ActualArrival      *int64
	ActualDeparture    *int64
	Status             int `gorm:"index"`
	Priority           int
}

func (ScheduleDTO) TableName() string {
	return "schedules"
}

func fromDomain(s *schedule.Schedule) ScheduleDTO {
	return ScheduleDTO{
		ID:                 uint64(s.ID()),
		VesselID:           uint64(s.VesselID()),
		BerthID:            uint64(s.BerthID()),
		RequestedArrival:   int64(s.RequestedArrival()),
		RequestedDeparture: int64(s.RequestedDeparture()),
		ActualArrival:      tickPtr(s.ActualArrival()),
		ActualDeparture:    tickPtr(s.ActualDeparture()),
		Status:             int(s.Status()),
		Priority:           s.Priority(),
	}
}

func toDomain(dto ScheduleDTO) (*schedule.Schedule, error) {
	return schedule.RestoreSchedule(
		kernel.ID(dto.ID),
		kernel.ID(dto.VesselID),
		kernel.ID(dto.BerthID),
		kernel.Tick(dto.RequestedArrival),
		kernel.Tick(dto.RequestedDeparture),
		fromRaw(dto.ActualArrival),
		fromRaw(dto.ActualDeparture),
		schedule.Status(dto.Status),
		dto.Priority,
	)
}

func tickPtr(t *kernel.Tick) *int64 {
	if t == nil {
		return nil
	}
	raw := int64(*t)
	return &raw
}

func fromRaw(raw *int64) *kernel.Tick {
	if raw == nil {
		return nil
	}
	t := kernel.Tick(*raw)
	return &t
}
