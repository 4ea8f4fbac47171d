package queries

import (
	"errors"

	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/pkg/guard"
)

var ErrGetEquipmentStatusQueryIsNotConstructed = errors.New(
	"GetEquipmentStatusQuery must be created via NewGetEquipmentStatusQuery constructor",
)

type GetEquipmentStatusQuery struct {
	equipmentType string
	guard         guard.ConstructorGuard
}

func NewGetEquipmentStatusQuery(equipmentType string) (GetEquipmentStatusQuery, error) {
	t := equipment.NormalizeType(equipmentType)
	if t == "" {
		return GetEquipmentStatusQuery{}, equipment.ErrTypeIsRequired
	}
	return GetEquipmentStatusQuery{equipmentType: t, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEquipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetEquipmentStatusQueryIsNotConstructed)
}

func (q GetEquipmentStatusQuery) EquipmentType() string {
	return q.equipmentType
}

// GetEquipmentStatusQueryResponse reports inventory counts of one equipment
// type. InUse counts units reserved by in-progress operations and
// Utilization is the unavailable share in percent.
type GetEquipmentStatusQueryResponse struct {
	Type        string  `json:"type"`
	Total       int     `json:"total"`
	Available   int     `json:"available"`
	Maintenance int     `json:"maintenance"`
	InUse       int     `json:"inUse"`
	Utilization float64 `json:"utilization"`
}
