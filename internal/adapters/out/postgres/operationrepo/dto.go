// Package operationrepo maps cargo operations to the operations table.
package operationrepo

import (
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/operation"
)

type OperationDTO struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement:false"`
	Type          int
	ContainerID   uint64  `gorm:"index"`
	VesselID      *uint64 `gorm:"index"`
	EquipmentType string
	Unit          int
	Operator      string
	StartTick     int64
	EndTick       *int64
	Status        int `gorm:"index"`
	Efficiency    float64
}

func (OperationDTO) TableName() string {
	return "operations"
}

func fromDomain(o *operation.Operation) OperationDTO {
	var vesselID *uint64
	if id := o.VesselID(); id != nil {
		raw := uint64(*id)
		vesselID = &raw
	}
	var end *int64
	if t := o.End(); t != nil {
		raw := int64(*t)
		end = &raw
	}

	return OperationDTO{
		ID:            uint64(o.ID()),
		Type:          int(o.Type()),
		ContainerID:   uint64(o.ContainerID()),
		VesselID:      vesselID,
		EquipmentType: o.EquipmentType(),
		Unit:          o.Unit(),
		Operator:      o.Operator().String(),
		StartTick:     int64(o.Start()),
		EndTick:       end,
		Status:        int(o.Status()),
		Efficiency:    o.Efficiency(),
	}
}

func toDomain(dto OperationDTO) (*operation.Operation, error) {
	var vesselID *kernel.ID
	if dto.VesselID != nil {
		id := kernel.ID(*dto.VesselID)
		vesselID = &id
	}
	var end *kernel.Tick
	if dto.EndTick != nil {
		t := kernel.Tick(*dto.EndTick)
		end = &t
	}

	return operation.RestoreOperation(
		kernel.ID(dto.ID),
		operation.Type(dto.Type),
		kernel.ID(dto.ContainerID),
		vesselID,
		dto.EquipmentType,
		dto.Unit,
		kernel.Principal(dto.Operator),
		kernel.Tick(dto.StartTick),
		end,
		operation.Status(dto.Status),
		dto.Efficiency,
	)
}
