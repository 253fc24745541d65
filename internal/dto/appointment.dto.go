package dto

import (
	"github.com/shopspring/decimal"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

type AppointmentServiceDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
}

type AppointmentDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time"`
	DurationMin int    `json:"duration_min"`
	Status      string `json:"status"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	EmployeeID  *uint  `json:"employee_id"`
	Notes       string `json:"notes"`

	Services []AppointmentServiceDTO `json:"services"`
	Total    decimal.Decimal         `json:"total"`
}

// FromAppointment achata um agendamento hidratado, já com duração e fim
// calculados pelos serviços efetivos.
func FromAppointment(ap *models.Appointment) AppointmentDTO {
	services := domain.ServicesOf(ap)
	duration := domain.TotalDuration(services)

	out := AppointmentDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		Time:        ap.Time,
		DurationMin: duration,
		Status:      ap.Status,
		ClientName:  ap.ClientName,
		ClientPhone: ap.ClientPhone,
		EmployeeID:  ap.EmployeeID,
		Notes:       ap.Notes,
		Services:    make([]AppointmentServiceDTO, 0, len(services)),
		Total:       decimal.Zero,
	}

	if start, err := domain.ParseClock(ap.Time); err == nil {
		out.EndTime = domain.FormatClock(start + duration)
	}

	for _, svc := range services {
		out.Services = append(out.Services, AppointmentServiceDTO{
			ID:          svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
			Price:       svc.Price,
		})
		out.Total = out.Total.Add(svc.Price)
	}

	return out
}

func FromAppointments(apps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for i := range apps {
		out = append(out, FromAppointment(&apps[i]))
	}
	return out
}
