package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/dto"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/httpresp"
	"github.com/Wisofer/GlowNic-sub000/internal/middleware"
	ucAppointment "github.com/Wisofer/GlowNic-sub000/internal/usecase/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	update       *ucAppointment.UpdateAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	remove       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments
	get          *ucAppointment.GetAppointment
	availability *ucAppointment.GetAvailability
	check        *ucAppointment.CheckAvailability
	log          *slog.Logger
}

type AppointmentUseCases struct {
	Create       *ucAppointment.CreateAppointment
	Update       *ucAppointment.UpdateAppointment
	UpdateStatus *ucAppointment.UpdateAppointmentStatus
	Delete       *ucAppointment.DeleteAppointment
	List         *ucAppointment.ListAppointments
	Get          *ucAppointment.GetAppointment
	Availability *ucAppointment.GetAvailability
	Check        *ucAppointment.CheckAvailability
}

func NewAppointmentHandler(uc AppointmentUseCases, log *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		create:       uc.Create,
		update:       uc.Update,
		updateStatus: uc.UpdateStatus,
		remove:       uc.Delete,
		list:         uc.List,
		get:          uc.Get,
		availability: uc.Availability,
		check:        uc.Check,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`

	// service_id é o formato antigo; service_ids vence quando ambos vierem.
	ServiceID  *uint  `json:"service_id"`
	ServiceIDs []uint `json:"service_ids"`

	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:MM
	Notes      string `json:"notes"`
	Status     string `json:"status"`
	EmployeeID *uint  `json:"employee_id"`
}

type UpdateAppointmentRequest struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	ServiceIDs  []uint  `json:"service_ids"`
	ClientName  *string `json:"client_name"`
	ClientPhone *string `json:"client_phone"`
	Notes       *string `json:"notes"`
	EmployeeID  *uint   `json:"employee_id"`
}

type UpdateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	ServiceIDs []uint `json:"service_ids"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	salonID, _ := middleware.Identity(c)
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	serviceIDs, ok := queryIDs(c, "service_ids")
	if !ok {
		return
	}
	duration, _ := strconv.Atoi(c.Query("duration_min"))

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		TenantID:    salonID,
		Date:        date,
		ServiceIDs:  serviceIDs,
		DurationMin: duration,
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CheckSlot responde se um horário exato cabe na agenda. exclude_id
// ignora o próprio agendamento numa edição.
func (h *AppointmentHandler) CheckSlot(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	duration, _ := strconv.Atoi(c.Query("duration_min"))
	exclude, _ := strconv.ParseUint(c.Query("exclude_id"), 10, 64)

	ok, err := h.check.Execute(c.Request.Context(), ucAppointment.CheckAvailabilityInput{
		TenantID:             salonID,
		Date:                 c.Query("date"),
		Time:                 c.Query("time"),
		DurationMin:          duration,
		ExcludeAppointmentID: uint(exclude),
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": ok})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.ClientPhone != "" && !validators.IsPhoneValid(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		TenantID:    salonID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		ServiceIDs:  req.ServiceIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Staff:       true,
		Status:      domain.Status(req.Status),
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// READ
// ======================================================

// List aceita date=YYYY-MM-DD ou month=YYYY-MM, mais status opcional.
func (h *AppointmentHandler) List(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	out, err := h.list.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		TenantID: salonID,
		Date:     c.Query("date"),
		Month:    c.Query("month"),
		Status:   c.Query("status"),
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	salonID, _ := middleware.Identity(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), salonID, id)
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	salonID, _ := middleware.Identity(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.ClientPhone != nil && *req.ClientPhone != "" && !validators.IsPhoneValid(*req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		TenantID:      salonID,
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		ServiceIDs:    req.ServiceIDs,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		Notes:         req.Notes,
		EmployeeID:    req.EmployeeID,
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// UpdateStatus: confirmar, concluir ou cancelar. Quem age assume o
// agendamento sem dono ao confirmar ou concluir.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	salonID, employeeID := middleware.Identity(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		TenantID:      salonID,
		AppointmentID: id,
		Status:        req.Status,
		EmployeeID:    &employeeID,
		ServiceIDs:    req.ServiceIDs,
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	salonID, _ := middleware.Identity(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.remove.Execute(c.Request.Context(), salonID, id)
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}
	if !deleted {
		mapAppointmentError(c, h.log, domain.ErrAppointmentNotFound)
		return
	}

	httpresp.NoContent(c)
}
