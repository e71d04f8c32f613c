package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PasswordHeader carries the shared secret on every API request.
// WebSocket clients may use the "password" query parameter instead,
// since browsers cannot set headers on WebSocket upgrades.
const PasswordHeader = "X-Dirigent-Password"

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// passwordAuth gates every operation on the shared secret. A server
// without a configured secret fails closed: no request passes.
func (s *Server) passwordAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.password == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "server has no password configured",
			})
			return
		}

		supplied := c.GetHeader(PasswordHeader)
		if supplied == "" {
			supplied = c.Query("password")
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.password)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid password",
			})
			return
		}
		c.Next()
	}
}
