package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/timezone"
)

func loadActiveSalon(ctx context.Context, store domain.TenantStore, id uint) (*models.Salon, error) {
	salon, err := store.GetSalon(ctx, id)
	if err != nil {
		return nil, err
	}
	if !salon.Active {
		return nil, domain.ErrTenantInactive
	}
	return salon, nil
}

// resolveServices carrega os serviços ativos do salão na ordem da seleção.
// Qualquer id desconhecido, inativo ou de outro salão é ErrServiceNotFound.
func resolveServices(
	ctx context.Context,
	store domain.ServiceStore,
	tenantID uint,
	sel domain.Selection,
) ([]models.Service, error) {

	if sel.IsEmpty() {
		return nil, nil
	}

	found, err := store.GetActiveServicesByIDs(ctx, tenantID, sel.IDs())
	if err != nil {
		return nil, err
	}
	return domain.OrderServices(sel, found)
}

type daySources struct {
	hours        *models.WorkingHours
	blocks       []models.BlockedTime
	appointments []models.Appointment
}

func loadDay(
	ctx context.Context,
	repo domain.Repository,
	tenantID uint,
	date time.Time,
) (daySources, error) {

	day := date.Format(domain.DateLayout)

	wh, err := repo.GetActiveWorkingHours(ctx, tenantID, int(date.Weekday()))
	if err != nil {
		return daySources{}, err
	}

	blocks, err := repo.ListBlockedTimesForDate(ctx, tenantID, day)
	if err != nil {
		return daySources{}, err
	}

	apps, err := repo.ListAppointments(ctx, tenantID, domain.AppointmentFilter{Date: day})
	if err != nil {
		return daySources{}, err
	}

	return daySources{hours: wh, blocks: blocks, appointments: apps}, nil
}

func (d daySources) check(startMin, durationMin int, excludeID uint) error {
	return domain.CheckBookable(d.hours, d.blocks, d.appointments, startMin, durationMin, excludeID)
}

type slotRequest struct {
	date     time.Time
	startMin int
}

func parseSlot(date, clock string) (slotRequest, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return slotRequest{}, err
	}
	m, err := domain.ParseClock(clock)
	if err != nil {
		return slotRequest{}, err
	}
	return slotRequest{date: d, startMin: m}, nil
}

// ensureFuture compara o início pedido com o relógio de parede do salão.
func ensureFuture(clock timezone.Clock, salon *models.Salon, req slotRequest) error {
	start := timezone.LocalDateTime(req.date, req.startMin, salon.Timezone)
	if start.Before(timezone.NowIn(clock, salon.Timezone)) {
		return domain.ErrPastDateTime
	}
	return nil
}

// activeEmployee valida o funcionário atuante contra o salão.
func activeEmployee(
	ctx context.Context,
	store domain.EmployeeStore,
	tenantID uint,
	employeeID *uint,
) (*models.Employee, error) {

	if employeeID == nil {
		return nil, nil
	}
	emp, err := store.GetEmployee(ctx, tenantID, *employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.Active {
		return nil, domain.ErrEmployeeNotAuthorized
	}
	return emp, nil
}

// errAppointmentMoved: outra escrita mudou a data do agendamento entre a
// leitura e o lock, então o lock obtido não cobre a data atual.
var errAppointmentMoved = errors.New("appointment moved while waiting for booking lock")

const lockAttempts = 3

// lockAppointment trava as datas que dates calcula a partir do agendamento
// lido fora da transação e roda fn com a versão relida sob o lock. Se a data
// mudou no caminho, recomeça com a data nova. Esgotadas as tentativas, a
// agenda está disputada demais e o pedido volta como ErrSlotUnavailable.
func lockAppointment(
	ctx context.Context,
	repo domain.Repository,
	tenantID, appointmentID uint,
	dates func(current *models.Appointment) ([]string, error),
	fn func(ctx context.Context, tx domain.Repository, ap *models.Appointment) error,
) error {

	for attempt := 0; attempt < lockAttempts; attempt++ {
		current, err := repo.GetAppointment(ctx, tenantID, appointmentID)
		if err != nil {
			return err
		}
		locked, err := dates(current)
		if err != nil {
			return err
		}

		err = repo.WithinBookingLock(ctx, tenantID, locked, func(ctx context.Context, tx domain.Repository) error {
			ap, err := tx.GetAppointment(ctx, tenantID, appointmentID)
			if err != nil {
				return err
			}
			if ap.Date != current.Date {
				return errAppointmentMoved
			}
			return fn(ctx, tx, ap)
		})
		if !errors.Is(err, errAppointmentMoved) {
			return err
		}
	}
	return domain.ErrSlotUnavailable
}
