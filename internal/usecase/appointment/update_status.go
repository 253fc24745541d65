package appointment

import (
	"context"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/events"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
	"github.com/Wisofer/GlowNic-sub000/internal/timezone"
)

type UpdateStatusInput struct {
	TenantID      uint
	AppointmentID uint
	Status        string

	// EmployeeID é o funcionário que age; assume o agendamento sem dono
	// ao confirmar ou concluir.
	EmployeeID *uint

	// ServiceIDs nil mantém os serviços; não-nil (mesmo vazio) substitui.
	ServiceIDs []uint
}

type UpdateAppointmentStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events events.Publisher
	clock  timezone.Clock
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher events.Publisher,
	clock timezone.Clock,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:   repo,
		audit:  audit,
		events: publisher,
		clock:  clock,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	salon, err := loadActiveSalon(ctx, uc.repo, in.TenantID)
	if err != nil {
		return nil, err
	}

	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var (
		result   *models.Appointment
		from     domain.Status
		changed  bool
		recorded int
	)

	sameDay := func(current *models.Appointment) ([]string, error) {
		return []string{current.Date}, nil
	}

	err = lockAppointment(ctx, uc.repo, salon.ID, in.AppointmentID, sameDay, func(ctx context.Context, tx domain.Repository, ap *models.Appointment) error {
		from = domain.Status(ap.Status)

		emp, err := activeEmployee(ctx, tx, salon.ID, in.EmployeeID)
		if err != nil {
			return err
		}

		// ----------------------------------------------
		// Troca de serviços vem antes, para a receita ver
		// o conjunto já gravado
		// ----------------------------------------------
		servicesChanged := in.ServiceIDs != nil
		if servicesChanged {
			if from.IsTerminal() {
				return domain.ErrInvalidTransition
			}
			sel := domain.NewSelection(nil, in.ServiceIDs)
			services, err := resolveServices(ctx, tx, salon.ID, sel)
			if err != nil {
				return err
			}
			if err := tx.ReplaceServices(ctx, ap.ID, sel.IDs()); err != nil {
				return err
			}
			domain.SetServices(ap, services)
		}

		if target == from {
			// mesmo status: nada a fazer além da troca de serviços
			if servicesChanged {
				if err := uc.revalidate(ctx, tx, ap); err != nil {
					return err
				}
			}
			result, err = tx.GetAppointment(ctx, salon.ID, ap.ID)
			return err
		}

		action, err := domain.ActionFor(target)
		if err != nil {
			return err
		}

		now := timezone.NowIn(uc.clock, salon.Timezone)
		if err := domain.Apply(ap, action, now); err != nil {
			return err
		}
		if emp != nil && action.Accepts() {
			domain.Claim(ap, emp.ID)
		}

		next := domain.Status(ap.Status)
		if servicesChanged && !next.IsTerminal() {
			if err := uc.revalidate(ctx, tx, ap); err != nil {
				return err
			}
		}

		if next == domain.StatusCompleted {
			recorded, err = RecordCompletionIncome(ctx, tx, ap, now)
			if err != nil {
				return err
			}
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}
		changed = true

		result, err = tx.GetAppointment(ctx, salon.ID, ap.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !changed {
		return result, nil
	}

	rid := requestid.From(ctx)
	uc.audit.Dispatch(audit.Event{
		SalonID:    salon.ID,
		EmployeeID: in.EmployeeID,
		Action:     "appointment_status_changed",
		Entity:     "appointment",
		EntityID:   &result.ID,
		RequestID:  rid,
		Metadata: map[string]any{
			"from":            string(from),
			"to":              result.Status,
			"income_recorded": recorded,
		},
	})
	uc.events.Publish(ctx, events.Event{
		Type:          events.AppointmentStatusChanged,
		SalonID:       salon.ID,
		AppointmentID: result.ID,
		Status:        result.Status,
		Date:          result.Date,
		Time:          result.Time,
		RequestID:     rid,
	})

	return result, nil
}

// revalidate confere o horário com a nova duração, ignorando o próprio
// agendamento.
func (uc *UpdateAppointmentStatus) revalidate(ctx context.Context, tx domain.Repository, ap *models.Appointment) error {
	req, err := parseSlot(ap.Date, ap.Time)
	if err != nil {
		return err
	}
	day, err := loadDay(ctx, tx, ap.SalonID, req.date)
	if err != nil {
		return err
	}
	return day.check(req.startMin, domain.DurationOf(ap), ap.ID)
}
