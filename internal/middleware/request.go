package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

// RequestID reaproveita o X-Request-ID do cliente ou gera um novo, e o
// propaga para o context da requisição (auditoria e eventos leem de lá).
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" || len(id) > 64 {
			id = requestid.New()
		}

		c.Request = c.Request.WithContext(requestid.With(c.Request.Context(), id))
		c.Writer.Header().Set(requestid.Header, id)

		c.Next()
	}
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestid.From(c.Request.Context()),
		}
		if salonID := c.GetUint(ContextSalonID); salonID != 0 {
			attrs = append(attrs, "salon_id", salonID)
		}

		switch {
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}
