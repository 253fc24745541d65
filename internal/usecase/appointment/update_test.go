package appointment

import (
	"errors"
	"testing"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

func TestUpdateAppointment_Reschedule(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", f.cut.ID)

	got, err := f.update().Execute(ctxBG(), UpdateAppointmentInput{
		TenantID: f.salon.ID, AppointmentID: ap.ID, Time: strPtr("14:00"), Notes: strPtr("remarcado"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Time != "14:00" || got.Notes != "remarcado" {
		t.Fatalf("appointment = %+v", got)
	}
}

func TestUpdateAppointment_ExcludesItself(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", f.cut.ID)

	// estender para 60 min sobre o próprio horário é permitido
	got, err := f.update().Execute(ctxBG(), UpdateAppointmentInput{
		TenantID: f.salon.ID, AppointmentID: ap.ID, ServiceIDs: []uint{f.cut.ID, f.beard.ID},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if domain.DurationOf(got) != 60 {
		t.Fatalf("duration = %d", domain.DurationOf(got))
	}
}

func TestUpdateAppointment_Errors(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", f.cut.ID)
	f.book(t, "11:00", f.cut.ID)
	done := f.book(t, "15:00", f.cut.ID)
	f.setStatus(t, done.ID, "confirmed")
	f.setStatus(t, done.ID, "completed")
	foreign := f.repo.addSalon(models.Salon{Slug: "x", Active: true})

	cases := []struct {
		name string
		in   UpdateAppointmentInput
		err  error
	}{
		{"conflict", UpdateAppointmentInput{TenantID: f.salon.ID, AppointmentID: ap.ID, Time: strPtr("10:45")}, domain.ErrSlotUnavailable},
		{"past", UpdateAppointmentInput{TenantID: f.salon.ID, AppointmentID: ap.ID, Date: strPtr("2026-02-23")}, domain.ErrPastDateTime},
		{"terminal", UpdateAppointmentInput{TenantID: f.salon.ID, AppointmentID: done.ID, Time: strPtr("16:00")}, domain.ErrInvalidTransition},
		{"foreign tenant", UpdateAppointmentInput{TenantID: foreign.ID, AppointmentID: ap.ID, Time: strPtr("16:00")}, domain.ErrAppointmentNotFound},
		{"bad time", UpdateAppointmentInput{TenantID: f.salon.ID, AppointmentID: ap.ID, Time: strPtr("25:00")}, domain.ErrInvalidDateOrTime},
		{"unknown service", UpdateAppointmentInput{TenantID: f.salon.ID, AppointmentID: ap.ID, ServiceIDs: []uint{777}}, domain.ErrServiceNotFound},
	}

	for _, tc := range cases {
		_, err := f.update().Execute(ctxBG(), tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.err)
		}
	}
}

func TestDeleteAppointment_Scoped(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", f.cut.ID)
	f.setStatus(t, ap.ID, "confirmed")
	f.setStatus(t, ap.ID, "completed")
	other := f.repo.addSalon(models.Salon{Slug: "x", Active: true})

	uc := NewDeleteAppointment(f.repo, nil, nilPublisher{})

	if ok, err := uc.Execute(ctxBG(), other.ID, ap.ID); err != nil || ok {
		t.Fatalf("foreign delete = %v, %v", ok, err)
	}
	if ok, err := uc.Execute(ctxBG(), f.salon.ID, ap.ID); err != nil || !ok {
		t.Fatalf("delete = %v, %v", ok, err)
	}
	if ok, _ := uc.Execute(ctxBG(), f.salon.ID, ap.ID); ok {
		t.Fatalf("second delete should report false")
	}
	if len(f.repo.ledgerRows()) != 1 {
		t.Fatalf("ledger must survive deletion")
	}
}

func TestListAppointments(t *testing.T) {
	f := newFixture(t)
	f.book(t, "11:00", f.cut.ID)
	first := f.book(t, "09:00", f.cut.ID, f.beard.ID)
	f.setStatus(t, first.ID, "confirmed")

	uc := NewListAppointments(f.repo)

	all, err := uc.Execute(ctxBG(), ListAppointmentsInput{TenantID: f.salon.ID, Date: monday})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(all) != 2 || all[0].Time != "09:00" || all[0].EndTime != "10:00" {
		t.Fatalf("list = %+v", all)
	}

	confirmed, _ := uc.Execute(ctxBG(), ListAppointmentsInput{TenantID: f.salon.ID, Month: "2026-03", Status: "confirmed"})
	if len(confirmed) != 1 || confirmed[0].ID != first.ID {
		t.Fatalf("confirmed = %+v", confirmed)
	}

	if _, err := uc.Execute(ctxBG(), ListAppointmentsInput{TenantID: f.salon.ID, Month: "2026-3"}); !errors.Is(err, domain.ErrInvalidDateOrTime) {
		t.Fatalf("bad month err = %v", err)
	}
	if _, err := uc.Execute(ctxBG(), ListAppointmentsInput{TenantID: f.salon.ID, Status: "done"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("bad status err = %v", err)
	}
}

func TestGetAppointment_Scoped(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "09:00", f.cut.ID, f.beard.ID)
	other := f.repo.addSalon(models.Salon{Slug: "y", Active: true})

	uc := NewGetAppointment(f.repo)

	got, err := uc.Execute(ctxBG(), f.salon.ID, ap.ID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.DurationMin != 60 || len(got.Services) != 2 || got.Total.String() != "230" {
		t.Fatalf("dto = %+v", got)
	}

	if _, err := uc.Execute(ctxBG(), other.ID, ap.ID); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("foreign get err = %v", err)
	}
}
