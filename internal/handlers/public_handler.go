package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/dto"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/httpresp"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
	ucAppointment "github.com/Wisofer/GlowNic-sub000/internal/usecase/appointment"
	ucTenant "github.com/Wisofer/GlowNic-sub000/internal/usecase/tenant"
	"github.com/Wisofer/GlowNic-sub000/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	resolve      *ucTenant.ResolveSalon
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	log          *slog.Logger
}

func NewPublicHandler(
	db *gorm.DB,
	resolve *ucTenant.ResolveSalon,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	log *slog.Logger,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		resolve:      resolve,
		availability: availability,
		create:       create,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   *uint  `json:"service_id"`
	ServiceIDs  []uint `json:"service_ids"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

type publicSalon struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

func (h *PublicHandler) salon(c *gin.Context) (*models.Salon, bool) {
	salon, err := h.resolve.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return nil, false
	}
	return salon, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}

	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND active = ?", salon.ID, true)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon": publicSalon{
			Name:     salon.Name,
			Slug:     salon.Slug,
			Phone:    salon.Phone,
			Address:  salon.Address,
			Timezone: salon.Timezone,
		},
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Data obrigatória.")
		return
	}

	serviceIDs, ok := queryIDs(c, "service_ids")
	if !ok {
		return
	}
	// formato antigo: um único service_id
	legacy, ok := queryIDs(c, "service_id")
	if !ok {
		return
	}
	serviceIDs = append(serviceIDs, legacy...)

	salon, ok := h.salon(c)
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		TenantID:   salon.ID,
		Date:       date,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT (PUBLIC → REUSA O MESMO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !validators.IsPhoneValid(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	// cliente nunca escolhe status nem funcionário
	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		TenantID:    salon.ID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		ServiceIDs:  req.ServiceIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}
