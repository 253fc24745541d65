package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
)

// --------------------------------------------------
// Parâmetros de rota e query
// --------------------------------------------------

// idParam lê :id; responde 400 e devolve ok=false quando inválido.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// parseIDList aceita "1,2,3" (service_ids=1,2) e também a chave repetida
// (service_ids=1&service_ids=2).
func parseIDList(values []string) ([]uint, error) {
	var out []uint
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, err
			}
			out = append(out, uint(id))
		}
	}
	return out, nil
}

func queryIDs(c *gin.Context, key string) ([]uint, bool) {
	ids, err := parseIDList(c.QueryArray(key))
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Lista de identificadores inválida.")
		return nil, false
	}
	return ids, true
}
