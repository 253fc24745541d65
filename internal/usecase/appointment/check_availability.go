package appointment

import (
	"context"
	"errors"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
)

type CheckAvailabilityInput struct {
	TenantID    uint
	Date        string
	Time        string
	DurationMin int
	// ExcludeAppointmentID ignora o próprio agendamento ao validar uma edição.
	ExcludeAppointmentID uint
}

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

func (uc *CheckAvailability) Execute(ctx context.Context, in CheckAvailabilityInput) (bool, error) {
	salon, err := loadActiveSalon(ctx, uc.repo, in.TenantID)
	if err != nil {
		return false, err
	}

	req, err := parseSlot(in.Date, in.Time)
	if err != nil {
		return false, err
	}

	day, err := loadDay(ctx, uc.repo, salon.ID, req.date)
	if err != nil {
		return false, err
	}

	err = day.check(req.startMin, in.DurationMin, in.ExcludeAppointmentID)
	if errors.Is(err, domain.ErrSlotUnavailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
