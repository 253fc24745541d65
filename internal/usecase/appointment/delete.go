package appointment

import (
	"context"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/events"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

type DeleteAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events events.Publisher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher events.Publisher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:   repo,
		audit:  audit,
		events: publisher,
	}
}

// Execute apaga só dentro do salão. Receitas já lançadas ficam no livro.
func (uc *DeleteAppointment) Execute(ctx context.Context, tenantID, appointmentID uint) (bool, error) {
	deleted, err := uc.repo.DeleteAppointment(ctx, tenantID, appointmentID)
	if err != nil || !deleted {
		return false, err
	}

	rid := requestid.From(ctx)
	uc.audit.Dispatch(audit.Event{
		SalonID:   tenantID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &appointmentID,
		RequestID: rid,
	})
	uc.events.Publish(ctx, events.Event{
		Type:          events.AppointmentDeleted,
		SalonID:       tenantID,
		AppointmentID: appointmentID,
		RequestID:     rid,
	})

	return true, nil
}
