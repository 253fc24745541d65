package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

// hydrated carrega os serviços pela associação, na ordem da seleção, e o
// serviço legado.
func hydrated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Services", func(q *gorm.DB) *gorm.DB {
			return q.Order("position ASC, service_id ASC")
		}).
		Preload("Services.Service").
		Preload("PrimaryService")
}

func (r *GormRepository) ListAppointments(
	ctx context.Context,
	tenantID uint,
	filter domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := hydrated(r.db.WithContext(ctx)).Where("salon_id = ?", tenantID)

	switch {
	case filter.Date != "":
		q = q.Where(`"date" = ?`, filter.Date)
	case filter.Month != "":
		q = q.Where(`"date" LIKE ?`, filter.Month+"-%")
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var apps []models.Appointment
	if err := q.
		Order(`"date" ASC`).
		Order(`"time" ASC`).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return apps, nil
}

func (r *GormRepository) GetAppointment(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := hydrated(r.db.WithContext(ctx)).
		Where("id = ? AND salon_id = ?", id, tenantID).
		First(&ap).Error; err != nil {
		return nil, notFound(err, domain.ErrAppointmentNotFound)
	}

	return &ap, nil
}

// CreateAppointment grava o agendamento e a associação de serviços na mesma
// transação. Violação do índice de horário vira ErrSlotUnavailable.
func (r *GormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
				return domain.ErrSlotUnavailable
			}
			return fmt.Errorf("create appointment: %w", err)
		}
		return insertServiceLinks(tx, ap.ID, serviceIDs)
	})
}

func (r *GormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
			return domain.ErrSlotUnavailable
		}
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// ReplaceServices substitui (não acrescenta) o conjunto de serviços e
// aponta o serviço principal para o primeiro da lista.
func (r *GormRepository) ReplaceServices(
	ctx context.Context,
	appointmentID uint,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", appointmentID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return fmt.Errorf("clear appointment services: %w", err)
		}

		if err := insertServiceLinks(tx, appointmentID, serviceIDs); err != nil {
			return err
		}

		var primary *uint
		if len(serviceIDs) > 0 {
			first := serviceIDs[0]
			primary = &first
		}

		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", appointmentID).
			Update("primary_service_id", primary).Error; err != nil {
			return fmt.Errorf("update primary service: %w", err)
		}
		return nil
	})
}

func (r *GormRepository) DeleteAppointment(
	ctx context.Context,
	tenantID uint,
	id uint,
) (bool, error) {

	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("id = ? AND salon_id = ?", id, tenantID).
			Delete(&models.Appointment{})
		if res.Error != nil {
			return fmt.Errorf("delete appointment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true

		// sqlite não aplica o ON DELETE CASCADE sem PRAGMA foreign_keys
		return tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentService{}).Error
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

func insertServiceLinks(tx *gorm.DB, appointmentID uint, serviceIDs []uint) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	links := make([]models.AppointmentService, 0, len(serviceIDs))
	for i, sid := range serviceIDs {
		links = append(links, models.AppointmentService{
			AppointmentID: appointmentID,
			ServiceID:     sid,
			Position:      i,
		})
	}

	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		return fmt.Errorf("link appointment services: %w", err)
	}
	return nil
}
