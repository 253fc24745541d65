package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

// RecordIncomeIfAbsent insere a receita de (agendamento, serviço) no máximo
// uma vez. A unicidade é do índice ux_transactions_appointment_service,
// não de uma consulta prévia.
func (r *GormRepository) RecordIncomeIfAbsent(
	ctx context.Context,
	entry domain.IncomeEntry,
) (bool, error) {

	appointmentID := entry.AppointmentID
	serviceID := entry.ServiceID

	row := models.Transaction{
		SalonID:       entry.TenantID,
		EmployeeID:    entry.EmployeeID,
		AppointmentID: &appointmentID,
		ServiceID:     &serviceID,
		Type:          models.TransactionIncome,
		Amount:        entry.Amount,
		Category:      entry.Category,
		Date:          entry.Date,
		Description:   entry.Description,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "appointment_id"},
				{Name: "service_id"},
			},
			DoNothing: true,
		}).
		Create(&row)

	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return false, nil
		}
		return false, fmt.Errorf("record income: %w", res.Error)
	}

	return res.RowsAffected == 1, nil
}
