package appointment

import (
	"context"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve a grade do dia. A duração vem, nesta ordem, de
// DurationMin explícito, da soma dos serviços escolhidos, ou do padrão.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	salon, err := loadActiveSalon(ctx, uc.repo, in.TenantID)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	duration := in.DurationMin
	if duration <= 0 {
		services, err := resolveServices(ctx, uc.repo, salon.ID, domain.NewSelection(nil, in.ServiceIDs))
		if err != nil {
			return nil, err
		}
		duration = domain.TotalDuration(services)
	}

	day, err := loadDay(ctx, uc.repo, salon.ID, date)
	if err != nil {
		return nil, err
	}

	return domain.BuildSlots(day.hours, day.blocks, day.appointments, duration), nil
}
