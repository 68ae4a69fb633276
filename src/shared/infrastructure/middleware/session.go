package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "pos_session"
	csrfCookie    = "csrf_token"
	csrfHeader    = "X-CSRF-Token"

	sessionKey = "session_id"
	csrfKey    = "csrf_token"

	cookieMaxAge = 12 * 60 * 60 // una jornada de caja
)

// Session asigna un id de sesión por cookie. Cada sesión tiene su
// propio carrito; el id se genera en la primera visita.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

// CSRF implementa double-submit: el token viaja en una cookie legible
// por el front y toda petición mutante lo repite en el header
// X-CSRF-Token. GET y HEAD pasan sin chequeo.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(csrfCookie)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(csrfCookie, token, cookieMaxAge, "/", "", false, false)
			c.Set(csrfKey, token)

			if isMutating(c.Request.Method) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"error":   "CSRF token missing",
				})
				return
			}
			c.Next()
			return
		}

		c.Set(csrfKey, token)

		if isMutating(c.Request.Method) && c.GetHeader(csrfHeader) != token {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "CSRF token mismatch",
			})
			return
		}

		c.Next()
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// SessionID retorna el id de sesión asignado por el middleware
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// CSRFToken retorna el token de la sesión para propagarlo a llamadas
// salientes
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfKey)
}
