package appointment

import (
	"context"
	"strings"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/events"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
	"github.com/Wisofer/GlowNic-sub000/internal/timezone"
)

// UpdateAppointmentInput: campos nil ficam como estão.
type UpdateAppointmentInput struct {
	TenantID      uint
	AppointmentID uint

	Date *string
	Time *string

	ServiceIDs []uint

	ClientName  *string
	ClientPhone *string
	Notes       *string
	EmployeeID  *uint
}

type UpdateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events events.Publisher
	clock  timezone.Clock
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher events.Publisher,
	clock timezone.Clock,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		audit:  audit,
		events: publisher,
		clock:  clock,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := loadActiveSalon(ctx, uc.repo, in.TenantID)
	if err != nil {
		return nil, err
	}

	// destino: o que veio no pedido, senão o que está gravado
	target := func(ap *models.Appointment) (slotRequest, error) {
		date, clock := ap.Date, ap.Time
		if in.Date != nil {
			date = *in.Date
		}
		if in.Time != nil {
			clock = *in.Time
		}
		return parseSlot(date, clock)
	}

	// trava a data de origem e a de destino
	dates := func(current *models.Appointment) ([]string, error) {
		req, err := target(current)
		if err != nil {
			return nil, err
		}
		return []string{current.Date, req.date.Format(domain.DateLayout)}, nil
	}

	var (
		result      *models.Appointment
		rescheduled bool
	)
	err = lockAppointment(ctx, uc.repo, salon.ID, in.AppointmentID, dates, func(ctx context.Context, tx domain.Repository, ap *models.Appointment) error {
		if domain.Status(ap.Status).IsTerminal() {
			return domain.ErrInvalidTransition
		}

		req, err := target(ap)
		if err != nil {
			return err
		}
		rescheduled = req.date.Format(domain.DateLayout) != ap.Date ||
			domain.FormatClock(req.startMin) != ap.Time

		if in.ClientName != nil {
			ap.ClientName = strings.TrimSpace(*in.ClientName)
		}
		if in.ClientPhone != nil {
			ap.ClientPhone = strings.TrimSpace(*in.ClientPhone)
		}
		if in.Notes != nil {
			ap.Notes = *in.Notes
		}
		if in.EmployeeID != nil {
			emp, err := activeEmployee(ctx, tx, salon.ID, in.EmployeeID)
			if err != nil {
				return err
			}
			ap.EmployeeID = &emp.ID
		}

		servicesChanged := in.ServiceIDs != nil
		var sel domain.Selection
		if servicesChanged {
			sel = domain.NewSelection(nil, in.ServiceIDs)
			services, err := resolveServices(ctx, tx, salon.ID, sel)
			if err != nil {
				return err
			}
			domain.SetServices(ap, services)
		}

		if rescheduled {
			if err := ensureFuture(uc.clock, salon, req); err != nil {
				return err
			}
			ap.Date = req.date.Format(domain.DateLayout)
			ap.Time = domain.FormatClock(req.startMin)
		}

		if rescheduled || servicesChanged {
			day, err := loadDay(ctx, tx, salon.ID, req.date)
			if err != nil {
				return err
			}
			if err := day.check(req.startMin, domain.DurationOf(ap), ap.ID); err != nil {
				return err
			}
		}

		if servicesChanged {
			if err := tx.ReplaceServices(ctx, ap.ID, sel.IDs()); err != nil {
				return err
			}
		}
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		result, err = tx.GetAppointment(ctx, salon.ID, ap.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	rid := requestid.From(ctx)
	uc.audit.Dispatch(audit.Event{
		SalonID:   salon.ID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &result.ID,
		RequestID: rid,
		Metadata: map[string]any{
			"rescheduled": rescheduled,
			"date":        result.Date,
			"time":        result.Time,
		},
	})
	uc.events.Publish(ctx, events.Event{
		Type:          events.AppointmentUpdated,
		SalonID:       salon.ID,
		AppointmentID: result.ID,
		Status:        result.Status,
		Date:          result.Date,
		Time:          result.Time,
		RequestID:     rid,
	})

	return result, nil
}
