package schedule

import (
	"context"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

type WorkingDayInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	Active    bool
}

type SetWorkingHours struct {
	store domain.WorkingHoursStore
	audit *audit.Dispatcher
}

func NewSetWorkingHours(store domain.WorkingHoursStore, audit *audit.Dispatcher) *SetWorkingHours {
	return &SetWorkingHours{store: store, audit: audit}
}

// Execute substitui a semana inteira. Um dia só pode aparecer uma vez;
// dias ativos precisam de início < fim. Dias inativos sem horário são
// aceitos.
func (uc *SetWorkingHours) Execute(
	ctx context.Context,
	tenantID uint,
	days []WorkingDayInput,
) ([]models.WorkingHours, error) {

	seen := make(map[int]bool, len(days))
	rows := make([]models.WorkingHours, 0, len(days))

	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 || seen[d.DayOfWeek] {
			return nil, domain.ErrInvalidWorkingHours
		}
		seen[d.DayOfWeek] = true

		if d.Active || d.StartTime != "" || d.EndTime != "" {
			if _, err := domain.ValidateWindow(d.StartTime, d.EndTime); err != nil {
				return nil, domain.ErrInvalidWorkingHours
			}
		}

		rows = append(rows, models.WorkingHours{
			SalonID:   tenantID,
			DayOfWeek: d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Active:    d.Active,
		})
	}

	if err := uc.store.ReplaceWorkingHours(ctx, tenantID, rows); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:   tenantID,
		Action:    "working_hours_updated",
		Entity:    "working_hours",
		RequestID: requestid.From(ctx),
		Metadata:  map[string]any{"days": len(rows)},
	})

	return uc.store.ListWorkingHours(ctx, tenantID)
}

type ListWorkingHours struct {
	store domain.WorkingHoursStore
}

func NewListWorkingHours(store domain.WorkingHoursStore) *ListWorkingHours {
	return &ListWorkingHours{store: store}
}

func (uc *ListWorkingHours) Execute(ctx context.Context, tenantID uint) ([]models.WorkingHours, error) {
	return uc.store.ListWorkingHours(ctx, tenantID)
}
