package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/middleware"
	ucSchedule "github.com/Wisofer/GlowNic-sub000/internal/usecase/schedule"
)

type WorkingHoursHandler struct {
	set  *ucSchedule.SetWorkingHours
	list *ucSchedule.ListWorkingHours
	log  *slog.Logger
}

func NewWorkingHoursHandler(
	set *ucSchedule.SetWorkingHours,
	list *ucSchedule.ListWorkingHours,
	log *slog.Logger,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{set: set, list: list, log: log}
}

type WorkingDayConfig struct {
	// ponteiro: 0 (domingo) é válido e "required" o rejeitaria
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	hours, err := h.list.Execute(c.Request.Context(), salonID)
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days := make([]ucSchedule.WorkingDayInput, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, ucSchedule.WorkingDayInput{
			DayOfWeek: *d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Active:    d.Active,
		})
	}

	hours, err := h.set.Execute(c.Request.Context(), salonID, days)
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, hours)
}
