package appointment

import (
	"errors"
	"testing"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

func slotMap(slots []domain.Slot) map[string]bool {
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.Start] = s.Available
	}
	return m
}

func TestGetAvailability_EmptyMonday(t *testing.T) {
	f := newFixture(t)

	slots, err := f.availability().Execute(ctxBG(), domain.AvailabilityInput{TenantID: f.salon.ID, Date: monday})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 16 || slots[0].Start != "09:00" || slots[15].Start != "16:30" {
		t.Fatalf("slots = %+v", slots)
	}
}

func TestGetAvailability_DurationFromServices(t *testing.T) {
	f := newFixture(t)

	slots, err := f.availability().Execute(ctxBG(), domain.AvailabilityInput{
		TenantID:   f.salon.ID,
		Date:       monday,
		ServiceIDs: []uint{f.color.ID},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	last := slots[len(slots)-1]
	if last.Start != "15:30" || last.End != "17:00" {
		t.Fatalf("last slot = %+v", last)
	}

	_, err = f.availability().Execute(ctxBG(), domain.AvailabilityInput{
		TenantID: f.salon.ID, Date: monday, ServiceIDs: []uint{12345},
	})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("err = %v, want ErrServiceNotFound", err)
	}
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	f := newFixture(t)

	slots, err := f.availability().Execute(ctxBG(), domain.AvailabilityInput{TenantID: f.salon.ID, Date: "2026-03-03"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("closed day slots = %#v, want empty non-nil", slots)
	}
}

func TestGetAvailability_CancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", f.cut.ID)

	slots, _ := f.availability().Execute(ctxBG(), domain.AvailabilityInput{TenantID: f.salon.ID, Date: monday})
	if slotMap(slots)["10:00"] {
		t.Fatalf("10:00 should be taken")
	}

	f.setStatus(t, ap.ID, "cancelled")

	slots, _ = f.availability().Execute(ctxBG(), domain.AvailabilityInput{TenantID: f.salon.ID, Date: monday})
	if !slotMap(slots)["10:00"] {
		t.Fatalf("10:00 should be free after cancel")
	}
}

func TestGetAvailability_BlockedTime(t *testing.T) {
	f := newFixture(t)
	_ = f.repo.CreateBlockedTime(ctxBG(), &models.BlockedTime{
		SalonID: f.salon.ID, Date: monday, StartTime: "12:00", EndTime: "13:00",
	})

	slots, _ := f.availability().Execute(ctxBG(), domain.AvailabilityInput{TenantID: f.salon.ID, Date: monday})
	m := slotMap(slots)
	if m["12:00"] || m["12:30"] || !m["13:00"] || !m["11:30"] {
		t.Fatalf("slots = %v", m)
	}
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", f.cut.ID)
	uc := NewCheckAvailability(f.repo)

	ok, err := uc.Execute(ctxBG(), CheckAvailabilityInput{TenantID: f.salon.ID, Date: monday, Time: "10:00", DurationMin: 30})
	if err != nil || ok {
		t.Fatalf("taken slot = %v, %v", ok, err)
	}

	ok, err = uc.Execute(ctxBG(), CheckAvailabilityInput{
		TenantID: f.salon.ID, Date: monday, Time: "10:00", DurationMin: 30, ExcludeAppointmentID: ap.ID,
	})
	if err != nil || !ok {
		t.Fatalf("excluding itself = %v, %v", ok, err)
	}

	if _, err := uc.Execute(ctxBG(), CheckAvailabilityInput{TenantID: f.salon.ID, Date: monday, Time: "x"}); !errors.Is(err, domain.ErrInvalidDateOrTime) {
		t.Fatalf("err = %v", err)
	}
}
