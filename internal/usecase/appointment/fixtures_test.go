package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wisofer/GlowNic-sub000/internal/events"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/timezone"
)

// 2026-03-02 é segunda-feira.
const monday = "2026-03-02"

type fixture struct {
	repo  *memRepo
	clock timezone.FixedClock
	salon models.Salon
	cut   models.Service
	beard models.Service
	color models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newMemRepo()
	salon := repo.addSalon(models.Salon{Name: "Glow", Slug: "glow", Timezone: "UTC", Active: true})
	repo.addHours(models.WorkingHours{SalonID: salon.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Active: true})

	f := &fixture{
		repo:  repo,
		clock: timezone.FixedClock{At: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		salon: salon,
	}
	f.cut = repo.addService(models.Service{SalonID: salon.ID, Name: "Corte", DurationMin: 30, Price: decimal.RequireFromString("150"), Active: true})
	f.beard = repo.addService(models.Service{SalonID: salon.ID, Name: "Barba", DurationMin: 30, Price: decimal.RequireFromString("80"), Active: true})
	f.color = repo.addService(models.Service{SalonID: salon.ID, Name: "Coloração", DurationMin: 90, Price: decimal.RequireFromString("400"), Active: true})
	return f
}

func (f *fixture) create() *CreateAppointment {
	return NewCreateAppointment(f.repo, nil, events.Nop{}, f.clock)
}

func (f *fixture) updateStatus() *UpdateAppointmentStatus {
	return NewUpdateAppointmentStatus(f.repo, nil, events.Nop{}, f.clock)
}

func (f *fixture) update() *UpdateAppointment {
	return NewUpdateAppointment(f.repo, nil, events.Nop{}, f.clock)
}

func (f *fixture) availability() *GetAvailability {
	return NewGetAvailability(f.repo)
}

func (f *fixture) book(t *testing.T, at string, serviceIDs ...uint) *models.Appointment {
	t.Helper()
	ap, err := f.create().Execute(ctxBG(), CreateAppointmentInput{
		TenantID:   f.salon.ID,
		ClientName: "Ana",
		Date:       monday,
		Time:       at,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		t.Fatalf("book %s: %v", at, err)
	}
	return ap
}

func (f *fixture) setStatus(t *testing.T, id uint, status string) *models.Appointment {
	t.Helper()
	ap, err := f.updateStatus().Execute(ctxBG(), UpdateStatusInput{
		TenantID:      f.salon.ID,
		AppointmentID: id,
		Status:        status,
	})
	if err != nil {
		t.Fatalf("status %s: %v", status, err)
	}
	return ap
}

func uintPtr(v uint) *uint { return &v }
func strPtr(v string) *string { return &v }

func ctxBG() context.Context { return context.Background() }

type nilPublisher struct{}

func (nilPublisher) Publish(context.Context, events.Event) {}
