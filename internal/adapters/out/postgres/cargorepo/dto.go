// Package cargorepo maps containers and their checkpoint history to the
// containers and checkpoints tables.
package cargorepo

import (
	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ContainerDTO struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement:false"`
	Weight           int
	CargoType        string
	ContainerType    string
	Size             string
	Owner            string  `gorm:"index"`
	VesselID         *uint64 `gorm:"index"`
	Location         string
	Destination      string
	Status           int
	HandlingPriority int
}

func (ContainerDTO) TableName() string {
	return "containers"
}

// CheckpointDTO is append-only. The (container_id, label) pair is unique.
type CheckpointDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContainerID uint64    `gorm:"uniqueIndex:idx_checkpoint_label"`
	Label       string    `gorm:"uniqueIndex:idx_checkpoint_label"`
	Location    string
	Status      int
	Notes       string
	RecordedBy  string
	RecordedAt  int64
}

func (CheckpointDTO) TableName() string {
	return "checkpoints"
}

func containerFromDomain(c *cargo.Container) ContainerDTO {
	var vesselID *uint64
	if id := c.VesselID(); id != nil {
		raw := uint64(*id)
		vesselID = &raw
	}

	return ContainerDTO{
		ID:               uint64(c.ID()),
		Weight:           c.Weight(),
		CargoType:        c.CargoType(),
		ContainerType:    c.ContainerType(),
		Size:             c.Size(),
		Owner:            c.Owner().String(),
		VesselID:         vesselID,
		Location:         c.Location(),
		Destination:      c.Destination(),
		Status:           int(c.Status()),
		HandlingPriority: c.HandlingPriority(),
	}
}

func containerToDomain(dto ContainerDTO) (*cargo.Container, error) {
	var vesselID *kernel.ID
	if dto.VesselID != nil {
		id := kernel.ID(*dto.VesselID)
		vesselID = &id
	}

	return cargo.RestoreContainer(
		kernel.ID(dto.ID),
		kernel.Principal(dto.Owner),
		cargo.Spec{
			Weight:        dto.Weight,
			CargoType:     dto.CargoType,
			ContainerType: dto.ContainerType,
			Size:          dto.Size,
			VesselID:      vesselID,
			Location:      dto.Location,
			Destination:   dto.Destination,
		},
		cargo.Status(dto.Status),
		dto.HandlingPriority,
	)
}

func checkpointFromDomain(c *cargo.Checkpoint) CheckpointDTO {
	return CheckpointDTO{
		ID:          c.ID(),
		ContainerID: uint64(c.ContainerID()),
		Label:       c.Label(),
		Location:    c.Location(),
		Status:      int(c.Status()),
		Notes:       c.Notes(),
		RecordedBy:  c.RecordedBy().String(),
		RecordedAt:  int64(c.RecordedAt()),
	}
}
