package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Wisofer/GlowNic-sub000/internal/config"
	"github.com/Wisofer/GlowNic-sub000/internal/httperr"
)

const (
	ContextEmployeeID = "employeeID"
	ContextSalonID    = "salonID"
	ContextRole       = "employeeRole"
)

// AuthMiddleware só verifica o token; a emissão fica fora desta API.
// Claims esperadas: sub (id do funcionário) e salonId.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token ausente.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token inválido.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token inválido.")
			c.Abort()
			return
		}

		employeeID, ok1 := claims["sub"].(float64)
		salonID, ok2 := claims["salonId"].(float64)
		role, _ := claims["role"].(string)
		if !ok1 || !ok2 || employeeID <= 0 || salonID <= 0 {
			httperr.Unauthorized(c, "invalid_token_payload", "Token inválido.")
			c.Abort()
			return
		}

		c.Set(ContextEmployeeID, uint(employeeID))
		c.Set(ContextSalonID, uint(salonID))
		c.Set(ContextRole, role)

		c.Next()
	}
}

// Identity lê o que o AuthMiddleware deixou no contexto.
func Identity(c *gin.Context) (salonID, employeeID uint) {
	return c.GetUint(ContextSalonID), c.GetUint(ContextEmployeeID)
}
