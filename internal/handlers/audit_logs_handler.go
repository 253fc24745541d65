package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/httpresp"
	"github.com/Wisofer/GlowNic-sub000/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	log  *slog.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, log: log}
}

// List: ?action=&entity=&entity_id=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	salonID, _ := middleware.Identity(c)

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))

	if raw := c.Query("entity_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_entity_id", "Identificador inválido.")
			return
		}
		entityID := uint(id)
		f.EntityID = &entityID
	}

	// datas inválidas são erro, não filtro ignorado
	for _, p := range []struct {
		key string
		dst **time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		raw := c.Query(p.key)
		if raw == "" {
			continue
		}
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_"+p.key, "Data inválida.")
			return
		}
		*p.dst = &day
	}

	page, err := h.logs.List(c.Request.Context(), salonID, f)
	if err != nil {
		mapAppointmentError(c, h.log, err)
		return
	}

	httpresp.OK(c, page)
}
