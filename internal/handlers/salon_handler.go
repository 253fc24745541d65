package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/httpresp"
	"github.com/Wisofer/GlowNic-sub000/internal/middleware"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	"github.com/Wisofer/GlowNic-sub000/internal/timezone"
	ucTenant "github.com/Wisofer/GlowNic-sub000/internal/usecase/tenant"
)

const roleOwner = "owner"

type SalonHandler struct {
	db         *gorm.DB
	deactivate *ucTenant.DeactivateSalon
	log        *slog.Logger
}

func NewSalonHandler(db *gorm.DB, deactivate *ucTenant.DeactivateSalon, log *slog.Logger) *SalonHandler {
	return &SalonHandler{db: db, deactivate: deactivate, log: log}
}

type UpdateSalonRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

// GetMe devolve o funcionário do token e o salão dele.
func (h *SalonHandler) GetMe(c *gin.Context) {
	salonID, employeeID := middleware.Identity(c)

	var employee models.Employee
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND salon_id = ?", employeeID, salonID).
		First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		mapAppointmentError(c, h.log, domain.ErrEmployeeNotAuthorized)
		return
	}
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	salon, ok := h.load(c, salonID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee": employee,
		"salon":    salon,
	})
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	salon, ok := h.load(c, salonID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	salon, ok := h.load(c, salonID)
	if !ok {
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, "invalid_name", "Nome obrigatório.")
			return
		}
		salon.Name = name
	}
	if req.Phone != nil {
		salon.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		salon.Address = strings.TrimSpace(*req.Address)
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		salon.Timezone = *req.Timezone
	}

	if err := h.db.WithContext(c.Request.Context()).Save(salon).Error; err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, salon)
}

// Deactivate é exclusivo do dono. Funcionários são desativados junto;
// serviços e agendamentos ficam para relatório.
func (h *SalonHandler) Deactivate(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	if c.GetString(middleware.ContextRole) != roleOwner {
		mapAppointmentError(c, h.log, domain.ErrEmployeeNotAuthorized)
		return
	}

	if err := h.deactivate.Execute(c.Request.Context(), salonID); err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *SalonHandler) load(c *gin.Context, salonID uint) (*models.Salon, bool) {
	var salon models.Salon
	err := h.db.WithContext(c.Request.Context()).First(&salon, salonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		mapAppointmentError(c, h.log, domain.ErrTenantNotFound)
		return nil, false
	}
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return nil, false
	}
	return &salon, true
}
