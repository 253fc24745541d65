package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

func TestNext_TransitionTable(t *testing.T) {
	cases := []struct {
		from   Status
		action Action
		want   Status
		err    error
	}{
		{StatusPending, ActionConfirm, StatusConfirmed, nil},
		{StatusPending, ActionCancel, StatusCancelled, nil},
		{StatusConfirmed, ActionComplete, StatusCompleted, nil},
		{StatusConfirmed, ActionCancel, StatusCancelled, nil},
		{StatusPending, ActionComplete, "", ErrInvalidTransition},
		{StatusCompleted, ActionCancel, "", ErrInvalidTransition},
		{StatusCancelled, ActionConfirm, "", ErrInvalidTransition},
		{StatusCompleted, ActionConfirm, "", ErrInvalidTransition},
	}

	for _, tc := range cases {
		got, err := Next(tc.from, tc.action)
		if !errors.Is(err, tc.err) {
			t.Fatalf("Next(%s, %s) err = %v, want %v", tc.from, tc.action, err, tc.err)
		}
		if got != tc.want {
			t.Fatalf("Next(%s, %s) = %s, want %s", tc.from, tc.action, got, tc.want)
		}
	}
}

func TestActionFor_RejectsPending(t *testing.T) {
	if _, err := ActionFor(StatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if a, _ := ActionFor(StatusCompleted); a != ActionComplete {
		t.Fatalf("action = %s, want complete", a)
	}
}

func TestInitialStatus(t *testing.T) {
	if s, _ := InitialStatus(false, StatusConfirmed); s != StatusPending {
		t.Fatalf("public flow = %s, want pending", s)
	}
	if s, _ := InitialStatus(true, StatusConfirmed); s != StatusConfirmed {
		t.Fatalf("staff flow = %s, want confirmed", s)
	}
	if s, _ := InitialStatus(true, ""); s != StatusPending {
		t.Fatalf("staff default = %s, want pending", s)
	}
	if _, err := InitialStatus(true, StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("terminal start err = %v", err)
	}
	if _, err := InitialStatus(true, Status("archived")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown start err = %v", err)
	}
}

func TestApply_SetsTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending)}

	if err := Apply(ap, ActionConfirm, now); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Fatalf("ConfirmedAt = %v", ap.ConfirmedAt)
	}

	if err := Apply(ap, ActionComplete, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("status = %s completedAt = %v", ap.Status, ap.CompletedAt)
	}

	if err := Apply(ap, ActionCancel, now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cancel completed err = %v", err)
	}
}

func TestClaim_OnlyWhenUnassigned(t *testing.T) {
	ap := &models.Appointment{}
	if !Claim(ap, 7) || *ap.EmployeeID != 7 {
		t.Fatalf("expected claim")
	}
	if Claim(ap, 9) || *ap.EmployeeID != 7 {
		t.Fatalf("claim must not override existing employee")
	}
}
