package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

type errorMapping struct {
	status  int
	message string
}

// ======================================================
// ERROS DE NEGÓCIO → HTTP (ponto único)
// ======================================================

var businessErrors = map[error]errorMapping{
	domain.ErrServiceNotFound:     {http.StatusBadRequest, "Serviço não encontrado."},
	domain.ErrInvalidDateOrTime:   {http.StatusBadRequest, "Data ou hora inválida."},
	domain.ErrInvalidStatus:       {http.StatusBadRequest, "Status inválido."},
	domain.ErrInvalidWorkingHours: {http.StatusBadRequest, "Horário de funcionamento inválido."},
	domain.ErrInvalidBlockedTime:  {http.StatusBadRequest, "Bloqueio de horário inválido."},

	domain.ErrSlotUnavailable:   {http.StatusConflict, "Horário indisponível."},
	domain.ErrInvalidTransition: {http.StatusConflict, "Mudança de status não permitida."},

	domain.ErrPastDateTime: {http.StatusUnprocessableEntity, "Não é possível agendar no passado."},

	domain.ErrAppointmentNotFound: {http.StatusNotFound, "Agendamento não encontrado."},
	domain.ErrTenantNotFound:      {http.StatusNotFound, "Salão não encontrado."},
	domain.ErrBlockedTimeNotFound: {http.StatusNotFound, "Bloqueio não encontrado."},

	domain.ErrTenantInactive:        {http.StatusForbidden, "Salão inativo."},
	domain.ErrEmployeeNotAuthorized: {http.StatusForbidden, "Funcionário sem permissão."},
}

// mapAppointmentError escreve a resposta de erro. Erros fora da tabela
// viram 500 e são logados; a mensagem interna nunca vai para o cliente.
func mapAppointmentError(c *gin.Context, log *slog.Logger, err error) {
	for target, m := range businessErrors {
		if errors.Is(err, target) {
			httperr.Write(c, m.status, httperr.Code(target), m.message)
			return
		}
	}

	log.Error("unexpected error",
		"path", c.FullPath(),
		"request_id", requestid.From(c.Request.Context()),
		"error", err,
	)
	httperr.Internal(c, "internal_error", "Erro interno.")
}
