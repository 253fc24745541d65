package audit

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Filter seleciona entradas de um salão. From/To são dias inteiros,
// ambos inclusivos.
type Filter struct {
	Action   string
	Entity   string
	EntityID *uint
	From     *time.Time
	To       *time.Time

	Page  int
	Limit int
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (f *Filter) normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageSize {
		f.Limit = DefaultPageSize
	}
}

// List devolve a página pedida, mais recentes primeiro.
func (l *Logger) List(ctx context.Context, salonID uint, f Filter) (Page, error) {
	f.normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("salon_id = ?", salonID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page{}, fmt.Errorf("count audit logs: %w", err)
	}

	logs := make([]models.AuditLog, 0, f.Limit)
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return Page{}, fmt.Errorf("list audit logs: %w", err)
	}

	return Page{Page: f.Page, Limit: f.Limit, Total: total, Logs: logs}, nil
}
