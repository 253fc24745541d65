package tenant

import (
	"context"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

type DeactivateSalon struct {
	store domain.TenantStore
	audit *audit.Dispatcher
}

func NewDeactivateSalon(store domain.TenantStore, audit *audit.Dispatcher) *DeactivateSalon {
	return &DeactivateSalon{store: store, audit: audit}
}

// Execute desativa o salão e seus funcionários. Serviços e agendamentos
// continuam para relatórios. Desativar de novo é no-op.
func (uc *DeactivateSalon) Execute(ctx context.Context, tenantID uint) error {
	salon, err := uc.store.GetSalon(ctx, tenantID)
	if err != nil {
		return err
	}
	if !salon.Active {
		return nil
	}

	if err := uc.store.DeactivateSalon(ctx, tenantID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:   tenantID,
		Action:    "salon_deactivated",
		Entity:    "salon",
		EntityID:  &tenantID,
		RequestID: requestid.From(ctx),
	})
	return nil
}

type ResolveSalon struct {
	store domain.TenantStore
}

func NewResolveSalon(store domain.TenantStore) *ResolveSalon {
	return &ResolveSalon{store: store}
}

// Execute traduz o slug público no salão; salões inativos não atendem.
func (uc *ResolveSalon) Execute(ctx context.Context, slug string) (*models.Salon, error) {
	salon, err := uc.store.GetSalonBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !salon.Active {
		return nil, domain.ErrTenantInactive
	}
	return salon, nil
}
