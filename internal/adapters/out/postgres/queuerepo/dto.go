// Package queuerepo maps the vessel waiting queue to the queue_entries table.
package queuerepo

import (
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/queue"
)

type QueueEntryDTO struct {
	Position      uint64 `gorm:"primaryKey;autoIncrement:false"`
	VesselID      uint64 `gorm:"index"`
	Priority      int
	EstimatedWait int64
	EnqueuedAt    int64
	Served        bool `gorm:"index"`
}

func (QueueEntryDTO) TableName() string {
	return "queue_entries"
}

func fromDomain(e *queue.Entry) QueueEntryDTO {
	return QueueEntryDTO{
		Position:      uint64(e.Position()),
		VesselID:      uint64(e.VesselID()),
		Priority:      e.Priority(),
		EstimatedWait: e.EstimatedWait(),
		EnqueuedAt:    int64(e.EnqueuedAt()),
		Served:        e.IsServed(),
	}
}

func toDomain(dto QueueEntryDTO) (*queue.Entry, error) {
	return queue.RestoreEntry(
		kernel.ID(dto.Position),
		kernel.ID(dto.VesselID),
		dto.Priority,
		dto.EstimatedWait,
		kernel.Tick(dto.EnqueuedAt),
		dto.Served,
	)
}
