// Package equipmentrepo maps equipment inventories to the equipment_inventories table.
package equipmentrepo

import (
	"seaport/internal/core/domain/model/equipment"
)

// InventoryDTO stores the reserved unit numbers as a JSON array.
type InventoryDTO struct {
	Type        string `gorm:"column:equipment_type;primaryKey"`
	Total       int
	Available   int
	Maintenance int
	Reserved    []int `gorm:"serializer:json;type:text"`
}

func (InventoryDTO) TableName() string {
	return "equipment_inventories"
}

func fromDomain(i *equipment.Inventory) InventoryDTO {
	return InventoryDTO{
		Type:        i.Type(),
		Total:       i.Total(),
		Available:   i.Available(),
		Maintenance: i.Maintenance(),
		Reserved:    i.Reserved(),
	}
}

func toDomain(dto InventoryDTO) (*equipment.Inventory, error) {
	return equipment.RestoreInventory(dto.Type, dto.Total, dto.Available, dto.Maintenance, dto.Reserved)
}
