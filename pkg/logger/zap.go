package logger

import (
	"context"

	"github.com/Gunvolt24/pharma_inventory/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions - дублирование логов в файл с ротацией. Пустой Path - только stdout.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ZapLogger - реализация ports.Logger; request_id и trace_id из контекста добавляются полями.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger - prod: JSON и уровень info, иначе консольный вывод с debug.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	return NewZapLoggerWithFile(isProd, FileOptions{})
}

// NewZapLoggerWithFile - как NewZapLogger, плюс JSON-копия в файл через lumberjack.
func NewZapLoggerWithFile(isProd bool, file FileOptions) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	var rotator *lumberjack.Logger
	if file.Path != "" {
		rotator = &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
		}
		level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if !isProd {
			level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		)
		logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	loggerWrap := newZapLogger(logger, isProd)

	cleanup := func() error {
		_ = loggerWrap.base.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return loggerWrap, cleanup, nil
}

// NewFromZap оборачивает готовый *zap.Logger (тесты, observer).
func NewFromZap(base *zap.Logger) *ZapLogger {
	return newZapLogger(base, false)
}

func newZapLogger(base *zap.Logger, isProd bool) *ZapLogger {
	base = base.WithOptions(zap.AddCallerSkip(1))
	return &ZapLogger{base: base, sugar: base.Sugar(), isProd: isProd}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if fields := ctxmeta.Fields(ctx); len(fields) > 0 {
		return z.sugar.With(fields...)
	}
	return z.sugar
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
