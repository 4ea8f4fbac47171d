// Package rolerepo stores role assignments in the role_assignments table.
package rolerepo

import (
	"context"

	"seaport/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleAssignmentDTO struct {
	Principal string `gorm:"primaryKey"`
	Role      string `gorm:"primaryKey"`
}

func (RoleAssignmentDTO) TableName() string {
	return "role_assignments"
}

// GormRoleRepository implements ports.RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// Grant is idempotent.
func (r *GormRoleRepository) Grant(ctx context.Context, principal kernel.Principal, role kernel.Role) error {
	dto := RoleAssignmentDTO{Principal: principal.String(), Role: role.String()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}

// Revoke is idempotent.
func (r *GormRoleRepository) Revoke(ctx context.Context, principal kernel.Principal, role kernel.Role) error {
	return r.db.WithContext(ctx).
		Where("principal = ? AND role = ?", principal.String(), role.String()).
		Delete(&RoleAssignmentDTO{}).Error
}

// Has reports whether principal holds role.
func (r *GormRoleRepository) Has(ctx context.Context, principal kernel.Principal, role kernel.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RoleAssignmentDTO{}).
		Where("principal = ? AND role = ?", principal.String(), role.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
