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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	TenantID uint

	ClientName  string
	ClientPhone string

	// ServiceID é o campo legado de serviço único; ServiceIDs vence
	// quando ambos vierem.
	ServiceID  *uint
	ServiceIDs []uint

	Date  string
	Time  string
	Notes string

	// Staff habilita criar já confirmado e atribuir funcionário.
	Staff      bool
	Status     domain.Status
	EmployeeID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events events.Publisher
	clock  timezone.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher events.Publisher,
	clock timezone.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		events: publisher,
		clock:  clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Salão
	// --------------------------------------------------
	salon, err := loadActiveSalon(ctx, uc.repo, in.TenantID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora
	// --------------------------------------------------
	req, err := parseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	status, err := domain.InitialStatus(in.Staff, in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Serviços e duração
	// --------------------------------------------------
	sel := domain.NewSelection(in.ServiceID, in.ServiceIDs)
	services, err := resolveServices(ctx, uc.repo, salon.ID, sel)
	if err != nil {
		return nil, err
	}
	duration := domain.TotalDuration(services)

	// --------------------------------------------------
	// 4️⃣ Nada no passado, independente da grade
	// --------------------------------------------------
	if err := ensureFuture(uc.clock, salon, req); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Funcionário (só fluxos da equipe)
	// --------------------------------------------------
	var employeeID *uint
	if in.Staff {
		emp, err := activeEmployee(ctx, uc.repo, salon.ID, in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp != nil {
			employeeID = &emp.ID
		}
	}

	now := timezone.NowIn(uc.clock, salon.Timezone)
	ap := &models.Appointment{
		SalonID:     salon.ID,
		EmployeeID:  employeeID,
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Date:        req.date.Format(domain.DateLayout),
		Time:        domain.FormatClock(req.startMin),
		Status:      string(status),
		Notes:       in.Notes,
	}
	// compatibilidade: principal = primeiro da seleção
	if ids := sel.IDs(); len(ids) > 0 {
		ap.PrimaryServiceID = &ids[0]
	}
	if status == domain.StatusConfirmed {
		ap.ConfirmedAt = &now
	}

	// --------------------------------------------------
	// 6️⃣ Validação + gravação sob o lock do dia
	// --------------------------------------------------
	var created *models.Appointment
	err = uc.repo.WithinBookingLock(ctx, salon.ID, []string{ap.Date}, func(ctx context.Context, tx domain.Repository) error {
		day, err := loadDay(ctx, tx, salon.ID, req.date)
		if err != nil {
			return err
		}
		if err := day.check(req.startMin, duration, 0); err != nil {
			return err
		}

		if err := tx.CreateAppointment(ctx, ap, sel.IDs()); err != nil {
			return err
		}

		created, err = tx.GetAppointment(ctx, salon.ID, ap.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria + evento (depois do commit)
	// --------------------------------------------------
	rid := requestid.From(ctx)
	uc.audit.Dispatch(audit.Event{
		SalonID:    salon.ID,
		EmployeeID: employeeID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &created.ID,
		RequestID:  rid,
		Metadata: map[string]any{
			"date":        created.Date,
			"time":        created.Time,
			"status":      created.Status,
			"service_ids": sel.IDs(),
		},
	})
	uc.events.Publish(ctx, events.Event{
		Type:          events.AppointmentCreated,
		SalonID:       salon.ID,
		AppointmentID: created.ID,
		Status:        created.Status,
		Date:          created.Date,
		Time:          created.Time,
		RequestID:     rid,
	})

	return created, nil
}
