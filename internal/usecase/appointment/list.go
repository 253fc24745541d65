package appointment

import (
	"context"
	"time"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/dto"
)

type ListAppointmentsInput struct {
	TenantID uint
	Date     string
	Month    string
	Status   string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentDTO, error) {

	if _, err := uc.repo.GetSalon(ctx, in.TenantID); err != nil {
		return nil, err
	}

	filter := domain.AppointmentFilter{}

	if in.Date != "" {
		if _, err := domain.ParseDate(in.Date); err != nil {
			return nil, err
		}
		filter.Date = in.Date
	} else if in.Month != "" {
		if _, err := time.Parse("2006-01", in.Month); err != nil || len(in.Month) != 7 {
			return nil, domain.ErrInvalidDateOrTime
		}
		filter.Month = in.Month
	}

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}

	apps, err := uc.repo.ListAppointments(ctx, in.TenantID, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(apps), nil
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, tenantID, appointmentID uint) (*dto.AppointmentDTO, error) {
	ap, err := uc.repo.GetAppointment(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, err
	}
	out := dto.FromAppointment(ap)
	return &out, nil
}
