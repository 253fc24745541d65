package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/httpresp"
	"github.com/Wisofer/GlowNic-sub000/internal/middleware"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, log *slog.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	DurationMin int              `json:"duration_min" binding:"required,min=1"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	DurationMin *int             `json:"duration_min,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Where("salon_id = ?", salonID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID, employeeID := middleware.Identity(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	service := models.Service{
		SalonID:     salonID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       *req.Price,
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	h.record(c, salonID, employeeID, "service_created", service.ID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	salonID, employeeID := middleware.Identity(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	service, ok := h.find(c, salonID, id)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 1 {
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(service).Error; err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	h.record(c, salonID, employeeID, "service_updated", service.ID)
	c.JSON(http.StatusOK, service)
}

// Delete só desativa: agendamentos antigos continuam apontando para o
// serviço e os relatórios não perdem o nome nem o preço.
func (h *ServiceHandler) Delete(c *gin.Context) {
	salonID, employeeID := middleware.Identity(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	service, ok := h.find(c, salonID, id)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(service).
		Update("active", false).Error; err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	h.record(c, salonID, employeeID, "service_deactivated", service.ID)
	httpresp.NoContent(c)
}

func (h *ServiceHandler) find(c *gin.Context, salonID, id uint) (*models.Service, bool) {
	var service models.Service
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&service).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return nil, false
	}
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return nil, false
	}
	return &service, true
}

func (h *ServiceHandler) record(c *gin.Context, salonID, employeeID uint, action string, serviceID uint) {
	h.audit.Dispatch(audit.Event{
		SalonID:    salonID,
		EmployeeID: &employeeID,
		Action:     action,
		Entity:     "service",
		EntityID:   &serviceID,
		RequestID:  requestid.From(c.Request.Context()),
	})
}
