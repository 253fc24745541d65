package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

// --------------------------------------------------
// Working hours
// --------------------------------------------------

// GetActiveWorkingHours devolve a primeira linha ativa do dia (por id) ou
// nil quando o salão não abre.
func (r *GormRepository) GetActiveWorkingHours(
	ctx context.Context,
	tenantID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND day_of_week = ? AND active = ?", tenantID, weekday, true).
		Order("id ASC").
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load working hours: %w", err)
	}

	return &wh, nil
}

func (r *GormRepository) ListWorkingHours(ctx context.Context, tenantID uint) ([]models.WorkingHours, error) {
	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", tenantID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, fmt.Errorf("list working hours: %w", err)
	}
	return hours, nil
}

func (r *GormRepository) ReplaceWorkingHours(
	ctx context.Context,
	tenantID uint,
	days []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("salon_id = ?", tenantID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return fmt.Errorf("clear working hours: %w", err)
		}

		if len(days) == 0 {
			return nil
		}

		for i := range days {
			days[i].ID = 0
			days[i].SalonID = tenantID
		}

		if err := tx.Create(&days).Error; err != nil {
			return fmt.Errorf("save working hours: %w", err)
		}
		return nil
	})
}

// --------------------------------------------------
// Blocked times
// --------------------------------------------------

func (r *GormRepository) ListBlockedTimesForDate(
	ctx context.Context,
	tenantID uint,
	date string,
) ([]models.BlockedTime, error) {

	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where(`salon_id = ? AND "date" = ?`, tenantID, date).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("list blocked times: %w", err)
	}
	return blocks, nil
}

func (r *GormRepository) CreateBlockedTime(ctx context.Context, b *models.BlockedTime) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create blocked time: %w", err)
	}
	return nil
}

func (r *GormRepository) DeleteBlockedTime(ctx context.Context, tenantID, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, tenantID).
		Delete(&models.BlockedTime{})
	if res.Error != nil {
		return false, fmt.Errorf("delete blocked time: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
