package appointment

import (
	"time"

	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Apply aplica a transição e marca o carimbo de tempo correspondente.
func Apply(ap *models.Appointment, action Action, now time.Time) error {
	next, err := Next(Status(ap.Status), action)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	switch next {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
	return nil
}

// Claim atribui o funcionário quando o agendamento ainda não tem dono.
func Claim(ap *models.Appointment, employeeID uint) bool {
	if ap.EmployeeID != nil {
		return false
	}
	id := employeeID
	ap.EmployeeID = &id
	return true
}

// SetServices troca o conjunto de serviços; o principal legado passa a ser
// o primeiro do novo conjunto.
func SetServices(ap *models.Appointment, services []models.Service) {
	ap.Services = make([]models.AppointmentService, 0, len(services))
	for i, svc := range services {
		ap.Services = append(ap.Services, models.AppointmentService{
			AppointmentID: ap.ID,
			ServiceID:     svc.ID,
			Position:      i,
			Service:       svc,
		})
	}

	if len(services) == 0 {
		ap.PrimaryServiceID = nil
		ap.PrimaryService = nil
		return
	}
	first := services[0]
	ap.PrimaryServiceID = &first.ID
	ap.PrimaryService = &first
}
