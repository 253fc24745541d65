package appointment

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

type ledgerKey struct {
	appointmentID uint
	serviceID     uint
}

type memState struct {
	salons    map[uint]models.Salon
	employees map[uint]models.Employee
	services  map[uint]models.Service
	hours     []models.WorkingHours
	blocks    []models.BlockedTime
	apps      map[uint]models.Appointment
	links     map[uint][]uint
	ledger    map[ledgerKey]models.Transaction
	nextID    uint
}

func (s *memState) clone() *memState {
	c := &memState{
		salons:    map[uint]models.Salon{},
		employees: map[uint]models.Employee{},
		services:  map[uint]models.Service{},
		hours:     append([]models.WorkingHours(nil), s.hours...),
		blocks:    append([]models.BlockedTime(nil), s.blocks...),
		apps:      map[uint]models.Appointment{},
		links:     map[uint][]uint{},
		ledger:    map[ledgerKey]models.Transaction{},
		nextID:    s.nextID,
	}
	for k, v := range s.salons {
		c.salons[k] = v
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.apps {
		c.apps[k] = v
	}
	for k, v := range s.links {
		c.links[k] = append([]uint(nil), v...)
	}
	for k, v := range s.ledger {
		c.ledger[k] = v
	}
	return c
}

// memRepo é um repositório em memória: o lock de reserva é um mutex global
// e a transação é um snapshot restaurado em caso de erro.
type memRepo struct {
	booking *sync.Mutex
	mu      *sync.Mutex
	state   **memState
}

func newMemRepo() *memRepo {
	st := &memState{
		salons:    map[uint]models.Salon{},
		employees: map[uint]models.Employee{},
		services:  map[uint]models.Service{},
		apps:      map[uint]models.Appointment{},
		links:     map[uint][]uint{},
		ledger:    map[ledgerKey]models.Transaction{},
		nextID:    100,
	}
	return &memRepo{booking: &sync.Mutex{}, mu: &sync.Mutex{}, state: &st}
}

func (r *memRepo) s() *memState { return *r.state }

func (r *memRepo) id() uint {
	r.s().nextID++
	return r.s().nextID
}

// ---- seeding ----

func (r *memRepo) addSalon(s models.Salon) models.Salon {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == 0 {
		s.ID = r.id()
	}
	r.s().salons[s.ID] = s
	return s
}

func (r *memRepo) addEmployee(e models.Employee) models.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == 0 {
		e.ID = r.id()
	}
	r.s().employees[e.ID] = e
	return e
}

func (r *memRepo) addService(svc models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()
	if svc.ID == 0 {
		svc.ID = r.id()
	}
	r.s().services[svc.ID] = svc
	return svc
}

func (r *memRepo) addHours(wh models.WorkingHours) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wh.ID = r.id()
	r.s().hours = append(r.s().hours, wh)
}

func (r *memRepo) ledgerRows() []models.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Transaction, 0, len(r.s().ledger))
	for _, tx := range r.s().ledger {
		out = append(out, tx)
	}
	return out
}

// ---- TenantStore ----

func (r *memRepo) GetSalon(_ context.Context, id uint) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.s().salons[id]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	return &s, nil
}

func (r *memRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.s().salons {
		if s.Slug == slug {
			s := s
			return &s, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *memRepo) DeactivateSalon(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.s().salons[id]
	if !ok {
		return domain.ErrTenantNotFound
	}
	s.Active = false
	r.s().salons[id] = s
	for k, e := range r.s().employees {
		if e.SalonID == id {
			e.Active = false
			r.s().employees[k] = e
		}
	}
	return nil
}

// ---- EmployeeStore ----

func (r *memRepo) GetEmployee(_ context.Context, tenantID, id uint) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.s().employees[id]
	if !ok || e.SalonID != tenantID {
		return nil, domain.ErrEmployeeNotAuthorized
	}
	return &e, nil
}

// ---- WorkingHoursStore ----

func (r *memRepo) GetActiveWorkingHours(_ context.Context, tenantID uint, weekday int) (*models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wh := range r.s().hours {
		if wh.SalonID == tenantID && wh.DayOfWeek == weekday && wh.Active {
			wh := wh
			return &wh, nil
		}
	}
	return nil, nil
}

func (r *memRepo) ListWorkingHours(_ context.Context, tenantID uint) ([]models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WorkingHours
	for _, wh := range r.s().hours {
		if wh.SalonID == tenantID {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (r *memRepo) ReplaceWorkingHours(_ context.Context, tenantID uint, days []models.WorkingHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.s().hours[:0]
	for _, wh := range r.s().hours {
		if wh.SalonID != tenantID {
			kept = append(kept, wh)
		}
	}
	for _, d := range days {
		d.SalonID = tenantID
		d.ID = r.id()
		kept = append(kept, d)
	}
	r.s().hours = kept
	return nil
}

// ---- BlockedTimeStore ----

func (r *memRepo) ListBlockedTimesForDate(_ context.Context, tenantID uint, date string) ([]models.BlockedTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.BlockedTime
	for _, b := range r.s().blocks {
		if b.SalonID == tenantID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memRepo) CreateBlockedTime(_ context.Context, b *models.BlockedTime) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.id()
	r.s().blocks = append(r.s().blocks, *b)
	return nil
}

func (r *memRepo) DeleteBlockedTime(_ context.Context, tenantID, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.s().blocks {
		if b.ID == id && b.SalonID == tenantID {
			r.s().blocks = append(r.s().blocks[:i], r.s().blocks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---- ServiceStore ----

func (r *memRepo) GetActiveServicesByIDs(_ context.Context, tenantID uint, ids []uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, id := range ids {
		svc, ok := r.s().services[id]
		if ok && svc.SalonID == tenantID && svc.Active {
			out = append(out, svc)
		}
	}
	return out, nil
}

// ---- AppointmentRepository ----

func (r *memRepo) hydrate(ap models.Appointment) models.Appointment {
	ap.Services = nil
	for _, sid := range r.s().links[ap.ID] {
		ap.Services = append(ap.Services, models.AppointmentService{
			AppointmentID: ap.ID,
			ServiceID:     sid,
			Service:       r.s().services[sid],
		})
	}
	ap.PrimaryService = nil
	if ap.PrimaryServiceID != nil {
		if svc, ok := r.s().services[*ap.PrimaryServiceID]; ok {
			ap.PrimaryService = &svc
		}
	}
	return ap
}

func (r *memRepo) ListAppointments(_ context.Context, tenantID uint, f domain.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.s().apps {
		if ap.SalonID != tenantID {
			continue
		}
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		if f.Date == "" && f.Month != "" && !strings.HasPrefix(ap.Date, f.Month+"-") {
			continue
		}
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		out = append(out, r.hydrate(ap))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *memRepo) GetAppointment(_ context.Context, tenantID, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.s().apps[id]
	if !ok || ap.SalonID != tenantID {
		return nil, domain.ErrAppointmentNotFound
	}
	h := r.hydrate(ap)
	return &h, nil
}

func (r *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment, serviceIDs []uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.s().apps {
		if other.SalonID == ap.SalonID && other.Date == ap.Date && other.Time == ap.Time &&
			other.Status != string(domain.StatusCancelled) {
			return domain.ErrSlotUnavailable
		}
	}
	ap.ID = r.id()
	stored := *ap
	stored.Services = nil
	stored.PrimaryService = nil
	r.s().apps[ap.ID] = stored
	r.s().links[ap.ID] = append([]uint(nil), serviceIDs...)
	return nil
}

func (r *memRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *ap
	stored.Services = nil
	stored.PrimaryService = nil
	r.s().apps[ap.ID] = stored
	return nil
}

func (r *memRepo) DeleteAppointment(_ context.Context, tenantID, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.s().apps[id]
	if !ok || ap.SalonID != tenantID {
		return false, nil
	}
	delete(r.s().apps, id)
	delete(r.s().links, id)
	return true, nil
}

func (r *memRepo) ReplaceServices(_ context.Context, appointmentID uint, serviceIDs []uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s().links[appointmentID] = append([]uint(nil), serviceIDs...)
	ap := r.s().apps[appointmentID]
	ap.PrimaryServiceID = nil
	if len(serviceIDs) > 0 {
		first := serviceIDs[0]
		ap.PrimaryServiceID = &first
	}
	r.s().apps[appointmentID] = ap
	return nil
}

// ---- FinanceLedger ----

func (r *memRepo) RecordIncomeIfAbsent(_ context.Context, e domain.IncomeEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ledgerKey{e.AppointmentID, e.ServiceID}
	if _, ok := r.s().ledger[key]; ok {
		return false, nil
	}
	aid, sid := e.AppointmentID, e.ServiceID
	r.s().ledger[key] = models.Transaction{
		SalonID:       e.TenantID,
		EmployeeID:    e.EmployeeID,
		AppointmentID: &aid,
		ServiceID:     &sid,
		Type:          models.TransactionIncome,
		Amount:        e.Amount,
		Category:      e.Category,
		Date:          e.Date,
		Description:   e.Description,
	}
	return true, nil
}

// move muda a data gravada sem passar pelo lock, como uma escrita concorrente.
func (r *memRepo) move(id uint, date string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap := r.s().apps[id]
	ap.Date = date
	r.s().apps[id] = ap
}

// ---- lock ----

func (r *memRepo) WithinBookingLock(
	ctx context.Context,
	_ uint,
	_ []string,
	fn func(ctx context.Context, repo domain.Repository) error,
) error {
	r.booking.Lock()
	defer r.booking.Unlock()

	r.mu.Lock()
	snapshot := r.s().clone()
	r.mu.Unlock()

	if err := fn(ctx, r); err != nil {
		r.mu.Lock()
		*r.state = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

var _ domain.Repository = (*memRepo)(nil)
