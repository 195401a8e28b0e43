package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TransactionLogger emits one line per completed /api request: method, path,
// status, caller identity (or "anonymous"), client address and route name.
func TransactionLogger(txLogger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			return
		}

		identity := "anonymous"
		if subject, exists := c.Get(ContextSubject); exists {
			if s, ok := subject.(string); ok && s != "" {
				identity = s
			}
		}

		event := txLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("identity", identity)

		if ip := c.ClientIP(); ip != "" {
			event = event.Str("ip", ip)
		}
		if route := c.FullPath(); route != "" {
			event = event.Str("route", route)
		}

		event.Msg("transaction")
	}
}
