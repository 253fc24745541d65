package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/httpresp"
	"github.com/Wisofer/GlowNic-sub000/internal/middleware"
	ucSchedule "github.com/Wisofer/GlowNic-sub000/internal/usecase/schedule"
)

type BlockedTimeHandler struct {
	create *ucSchedule.CreateBlockedTime
	list   *ucSchedule.ListBlockedTimes
	remove *ucSchedule.DeleteBlockedTime
	log    *slog.Logger
}

func NewBlockedTimeHandler(
	create *ucSchedule.CreateBlockedTime,
	list *ucSchedule.ListBlockedTimes,
	remove *ucSchedule.DeleteBlockedTime,
	log *slog.Logger,
) *BlockedTimeHandler {
	return &BlockedTimeHandler{create: create, list: list, remove: remove, log: log}
}

type CreateBlockedTimeRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *BlockedTimeHandler) List(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	blocks, err := h.list.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *BlockedTimeHandler) Create(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	block, err := h.create.Execute(c.Request.Context(), ucSchedule.BlockedTimeInput{
		TenantID:  salonID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.Created(c, block)
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	salonID, _ := middleware.Identity(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), salonID, id); err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.NoContent(c)
}
