package logctx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Keys used on gin.Context.
const (
	GinLoggerKey  = "logger"
	GinTraceIDKey = "traceID"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	traceIDKey
)

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// WithTraceID returns a copy of ctx carrying the request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID returns the trace id stored in ctx, or "".
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(traceIDKey).(string)
	return s
}

// FromGin returns a request-scoped logger from gin.Context if present,
// otherwise returns the provided base logger.
func FromGin(c *gin.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if c == nil {
		return base
	}
	if l, ok := c.Get(GinLoggerKey); ok {
		if lg, ok := l.(*zap.SugaredLogger); ok && lg != nil {
			return lg
		}
	}
	return FromCtx(c.Request.Context(), base)
}

// FromCtx returns a logger from context if set, otherwise enriches base with
// the trace id found in ctx.
func FromCtx(ctx context.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if ctx == nil {
		return base
	}
	if lg, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok && lg != nil {
		return lg
	}
	if tid := TraceID(ctx); tid != "" {
		return base.With("trace_id", tid)
	}
	return base
}
