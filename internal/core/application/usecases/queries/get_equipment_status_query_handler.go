package queries

import (
	"context"

	"seaport/internal/core/domain/model/equipment"

	"gorm.io/gorm"
)

// equipmentRow reads the JSON-encoded reservation list through GORM's serializer.
type equipmentRow struct {
	Type        string `gorm:"column:equipment_type"`
	Total       int
	Available   int
	Maintenance int
	Reserved    []int `gorm:"serializer:json"`
}

func (equipmentRow) TableName() string {
	return "equipment_inventories"
}

type GetEquipmentStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetEquipmentStatusQueryHandler(db *gorm.DB) GetEquipmentStatusQueryHandler {
	return GetEquipmentStatusQueryHandler{db: db}
}

// Handle returns nil when no inventory has been recorded for the type.
func (h GetEquipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetEquipmentStatusQuery,
) (*GetEquipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []equipmentRow
	err := h.db.WithContext(ctx).
		Where("equipment_type = ?", query.EquipmentType()).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	inventory, err := equipment.RestoreInventory(row.Type, row.Total, row.Available, row.Maintenance, row.Reserved)
	if err != nil {
		return nil, err
	}

	return &GetEquipmentStatusQueryResponse{
		Type:        inventory.Type(),
		Total:       inventory.Total(),
		Available:   inventory.Available(),
		Maintenance: inventory.Maintenance(),
		InUse:       len(inventory.Reserved()),
		Utilization: inventory.Utilization(),
	}, nil
}
