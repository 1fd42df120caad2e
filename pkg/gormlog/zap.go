package gormlog

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"github.com/fatflowers/gemcashier/pkg/logctx"
)

const defaultSlowThreshold = 500 * time.Millisecond

// ZapLogger implements gorm.io/gorm/logger.Interface and enriches logs with
// the request trace id via logctx.FromCtx.
type ZapLogger struct {
	base   *zap.SugaredLogger
	config gormlogger.Config
}

// New builds a logger that reports statements slower than slowThreshold as
// gorm_slow. A zero threshold falls back to 500ms.
func New(base *zap.SugaredLogger, slowThreshold time.Duration) *ZapLogger {
	if slowThreshold <= 0 {
		slowThreshold = defaultSlowThreshold
	}
	cfg := gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	}
	return &ZapLogger{base: base, config: cfg}
}

func (z *ZapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cfg := z.config
	cfg.LogLevel = level
	return &ZapLogger{base: z.base, config: cfg}
}

func (z *ZapLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if z.config.LogLevel >= gormlogger.Info {
		logctx.FromCtx(ctx, z.base).Infow(msg, "args", data)
	}
}

func (z *ZapLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if z.config.LogLevel >= gormlogger.Warn {
		logctx.FromCtx(ctx, z.base).Warnw(msg, "args", data)
	}
}

func (z *ZapLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if z.config.LogLevel >= gormlogger.Error {
		logctx.FromCtx(ctx, z.base).Errorw(msg, "args", data)
	}
}

func (z *ZapLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if z.config.LogLevel == gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	lg := logctx.FromCtx(ctx, z.base)
	fields := []interface{}{
		"rows", rows,
		"elapsed_ms", elapsed.Milliseconds(),
		"caller", shortCaller(utils.FileWithLineNum()),
	}
	switch {
	case err != nil && !(z.config.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		lg.Errorw("gorm_trace", append(fields, "err", err, "sql", sql)...)
	case z.config.SlowThreshold > 0 && elapsed > z.config.SlowThreshold:
		lg.Warnw("gorm_slow", append(fields, "sql", sql)...)
	case z.config.LogLevel >= gormlogger.Info:
		lg.Debugw("gorm", append(fields, "sql", sql)...)
	}
}

// shortCaller trims absolute build paths to repo-relative where possible.
//
//	/home/ci/gemcashier/internal/app/service/payment/store.go:38 -> internal/app/service/payment/store.go:38
func shortCaller(s string) string {
	if s == "" {
		return s
	}
	pathPart, linePart := s, ""
	if idx := strings.LastIndex(s, ":"); idx >= 0 {
		pathPart, linePart = s[:idx], s[idx:]
	}
	p := filepath.ToSlash(pathPart)
	for _, marker := range []string{"/internal/", "/pkg/", "/cmd/"} {
		if i := strings.Index(p, marker); i >= 0 {
			return p[i+1:] + linePart
		}
	}
	parts := strings.Split(p, "/")
	if n := len(parts); n >= 3 {
		return strings.Join(parts[n-3:], "/") + linePart
	}
	return strings.TrimPrefix(p, "/") + linePart
}
