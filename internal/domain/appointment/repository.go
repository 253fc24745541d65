package appointment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

// AppointmentFilter: Date ("YYYY-MM-DD") e Month ("YYYY-MM") são
// exclusivos; Date vence quando ambos vierem.
type AppointmentFilter struct {
	Date   string
	Month  string
	Status Status
}

type IncomeEntry struct {
	TenantID      uint
	EmployeeID    *uint
	AppointmentID uint
	ServiceID     uint
	Amount        decimal.Decimal
	Category      string
	Date          time.Time
	Description   string
}

// Buscas por id devolvem os erros de domínio (ErrTenantNotFound,
// ErrAppointmentNotFound...) quando o registro não existe ou pertence a
// outro salão.

type TenantStore interface {
	GetSalon(ctx context.Context, id uint) (*models.Salon, error)
	GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error)
	DeactivateSalon(ctx context.Context, id uint) error
}

type EmployeeStore interface {
	GetEmployee(ctx context.Context, tenantID, id uint) (*models.Employee, error)
}

type WorkingHoursStore interface {
	// GetActiveWorkingHours devolve nil quando o dia está fechado.
	GetActiveWorkingHours(ctx context.Context, tenantID uint, weekday int) (*models.WorkingHours, error)
	ListWorkingHours(ctx context.Context, tenantID uint) ([]models.WorkingHours, error)
	ReplaceWorkingHours(ctx context.Context, tenantID uint, days []models.WorkingHours) error
}

type BlockedTimeStore interface {
	ListBlockedTimesForDate(ctx context.Context, tenantID uint, date string) ([]models.BlockedTime, error)
	CreateBlockedTime(ctx context.Context, b *models.BlockedTime) error
	DeleteBlockedTime(ctx context.Context, tenantID, id uint) (bool, error)
}

type ServiceStore interface {
	GetActiveServicesByIDs(ctx context.Context, tenantID uint, ids []uint) ([]models.Service, error)
}

type AppointmentRepository interface {
	ListAppointments(ctx context.Context, tenantID uint, filter AppointmentFilter) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, tenantID, id uint) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment, serviceIDs []uint) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, tenantID, id uint) (bool, error)
	ReplaceServices(ctx context.Context, appointmentID uint, serviceIDs []uint) error
}

type FinanceLedger interface {
	// RecordIncomeIfAbsent devolve true só quando a linha foi inserida.
	RecordIncomeIfAbsent(ctx context.Context, entry IncomeEntry) (bool, error)
}

type Repository interface {
	TenantStore
	EmployeeStore
	WorkingHoursStore
	BlockedTimeStore
	ServiceStore
	AppointmentRepository
	FinanceLedger

	// WithinBookingLock executa fn numa única transação serializada por
	// (salão, data) para cada data em dates. Uma remarcação trava a data
	// de origem e a de destino. Toda chamada dentro de fn deve usar o repo
	// recebido.
	WithinBookingLock(
		ctx context.Context,
		tenantID uint,
		dates []string,
		fn func(ctx context.Context, repo Repository) error,
	) error
}
