package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/tool"
)

const HeaderRequestID = "X-Request-ID"

// TraceMiddleware adds a trace ID to the request context.
// It reads X-Request-ID if provided by the client; otherwise generates a UUIDv7.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(HeaderRequestID)
		if traceID == "" || len(traceID) > 128 {
			traceID = tool.GenerateUUIDV7()
		}

		c.Set(logctx.GinTraceIDKey, traceID)
		c.Request = c.Request.WithContext(logctx.WithTraceID(c.Request.Context(), traceID))
		c.Next()
	}
}
