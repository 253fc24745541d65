package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

// ErrorBody é o corpo de toda resposta de erro da API. request_id repete o
// X-Request-ID para o cliente citar no suporte.
type ErrorBody struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: requestid.From(c.Request.Context()),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
