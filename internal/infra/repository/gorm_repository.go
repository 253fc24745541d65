package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// --------------------------------------------------
// Booking lock
// --------------------------------------------------

// WithinBookingLock serializa escritas de agenda por (salão, data). No
// postgres usa um advisory lock de transação por data, sempre em ordem
// crescente para duas remarcações cruzadas não se travarem; em outros
// dialetos a própria transação é a fronteira (sqlite já serializa escritores).
func (r *GormRepository) WithinBookingLock(
	ctx context.Context,
	tenantID uint,
	dates []string,
	fn func(ctx context.Context, repo domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			for _, key := range BookingLockKeys(tenantID, dates) {
				if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
					return fmt.Errorf("booking lock %s: %w", key, err)
				}
			}
		}
		return fn(ctx, &GormRepository{db: tx})
	})
}

// BookingLockKeys devolve as chaves de lock sem repetição e ordenadas.
func BookingLockKeys(tenantID uint, dates []string) []string {
	uniq := make([]string, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		uniq = append(uniq, d)
	}
	sort.Strings(uniq)

	keys := make([]string, len(uniq))
	for i, d := range uniq {
		keys[i] = fmt.Sprintf("booking:%d:%s", tenantID, d)
	}
	return keys
}

func notFound(err error, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*GormRepository)(nil)
