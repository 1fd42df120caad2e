package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fatflowers/gemcashier/pkg/config"
)

func New(cfg *config.Config) (*zap.SugaredLogger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg != nil && cfg.Env == config.EnvDev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.TimeKey = "time"
	if cfg != nil && cfg.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

var Module = fx.Options(
	fx.Provide(New),
)
