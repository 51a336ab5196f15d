package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zap.Logger

// InitLogger ساخت zap logger بر اساس محیط؛ در صورت تنظیم LOG_FILE خروجی به فایل چرخشی هم نوشته می‌شود
func InitLogger(s Settings) error {
	cfg := zap.NewDevelopmentConfig() // برای توسعه
	if s.Env == EnvProduction {
		cfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build zap logger: %w", err)
	}

	if s.LogFile != "" {
		rotating := zapcore.AddSync(&lumberjack.Logger{
			Filename:   s.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
		fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), rotating, cfg.Level)
		logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}))
	}

	Logger = logger
	Logger.Info("✅ Zap logger initialized", zap.String("env", s.Env), zap.String("level", level.String()))
	return nil
}
