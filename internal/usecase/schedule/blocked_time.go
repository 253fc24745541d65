package schedule

import (
	"context"
	"strings"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

type BlockedTimeInput struct {
	TenantID  uint
	Date      string
	StartTime string
	EndTime   string
	Reason    string
}

type CreateBlockedTime struct {
	store domain.BlockedTimeStore
	audit *audit.Dispatcher
}

func NewCreateBlockedTime(store domain.BlockedTimeStore, audit *audit.Dispatcher) *CreateBlockedTime {
	return &CreateBlockedTime{store: store, audit: audit}
}

func (uc *CreateBlockedTime) Execute(ctx context.Context, in BlockedTimeInput) (*models.BlockedTime, error) {
	if _, err := domain.ParseDate(in.Date); err != nil {
		return nil, domain.ErrInvalidBlockedTime
	}
	if _, err := domain.ValidateWindow(in.StartTime, in.EndTime); err != nil {
		return nil, domain.ErrInvalidBlockedTime
	}

	b := &models.BlockedTime{
		SalonID:   in.TenantID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Reason:    strings.TrimSpace(in.Reason),
	}
	if err := uc.store.CreateBlockedTime(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:   in.TenantID,
		Action:    "blocked_time_created",
		Entity:    "blocked_time",
		EntityID:  &b.ID,
		RequestID: requestid.From(ctx),
		Metadata:  map[string]any{"date": b.Date, "start": b.StartTime, "end": b.EndTime},
	})

	return b, nil
}

type ListBlockedTimes struct {
	store domain.BlockedTimeStore
}

func NewListBlockedTimes(store domain.BlockedTimeStore) *ListBlockedTimes {
	return &ListBlockedTimes{store: store}
}

func (uc *ListBlockedTimes) Execute(ctx context.Context, tenantID uint, date string) ([]models.BlockedTime, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	blocks, err := uc.store.ListBlockedTimesForDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	if blocks == nil {
		blocks = []models.BlockedTime{}
	}
	return blocks, nil
}

type DeleteBlockedTime struct {
	store domain.BlockedTimeStore
	audit *audit.Dispatcher
}

func NewDeleteBlockedTime(store domain.BlockedTimeStore, audit *audit.Dispatcher) *DeleteBlockedTime {
	return &DeleteBlockedTime{store: store, audit: audit}
}

func (uc *DeleteBlockedTime) Execute(ctx context.Context, tenantID, id uint) error {
	ok, err := uc.store.DeleteBlockedTime(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrBlockedTimeNotFound
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:   tenantID,
		Action:    "blocked_time_deleted",
		Entity:    "blocked_time",
		EntityID:  &id,
		RequestID: requestid.From(ctx),
	})
	return nil
}
