// Package logging строит zap логгер приложения.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создает production логгер (JSON в stderr) с заданным уровнем.
// Неизвестный уровень трактуется как info.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// OrNop возвращает logger или no-op логгер, если logger == nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
