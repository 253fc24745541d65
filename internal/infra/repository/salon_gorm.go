package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *GormRepository) GetSalon(ctx context.Context, id uint) (*models.Salon, error) {
	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, notFound(err, domain.ErrTenantNotFound)
	}
	return &salon, nil
}

func (r *GormRepository) GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, notFound(err, domain.ErrTenantNotFound)
	}
	return &salon, nil
}

// DeactivateSalon desativa o salão e seus funcionários. Serviços e
// agendamentos ficam para o histórico.
func (r *GormRepository) DeactivateSalon(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Salon{}).
			Where("id = ?", id).
			Update("active", false)
		if res.Error != nil {
			return fmt.Errorf("deactivate salon: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrTenantNotFound
		}

		if err := tx.Model(&models.Employee{}).
			Where("salon_id = ?", id).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("deactivate employees: %w", err)
		}
		return nil
	})
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

// GetEmployee só encontra funcionários do próprio salão.
func (r *GormRepository) GetEmployee(ctx context.Context, tenantID, id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, tenantID).
		First(&emp).Error; err != nil {
		return nil, notFound(err, domain.ErrEmployeeNotAuthorized)
	}
	return &emp, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *GormRepository) GetActiveServicesByIDs(
	ctx context.Context,
	tenantID uint,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = ? AND id IN ?", tenantID, true, ids).
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	return services, nil
}
