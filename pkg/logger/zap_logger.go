package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	_defaultMaxSize    = 100
	_defaultMaxBackups = 7
	_defaultMaxAge     = 30
)

// Config carries the static fields attached to every entry and the rotated file target.
type Config struct {
	Service  string
	Env      string
	Filename string
}

type ZapLogger struct {
	logger *zap.Logger
	level  zapcore.Level

	// boundRequestID is already attached to logger by Ctx.
	boundRequestID string

	maxSize    int
	maxBackups int
	maxAge     int
}

func NewZapLogger(cfg Config, opts ...Option) (*ZapLogger, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		FunctionKey:   zapcore.OmitKey,
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	zl := &ZapLogger{
		maxSize:    _defaultMaxSize,
		maxBackups: _defaultMaxBackups,
		maxAge:     _defaultMaxAge,
		level:      zapcore.InfoLevel,
	}

	for _, opt := range opts {
		opt(zl)
	}

	if err := zl.validate(); err != nil {
		return nil, fmt.Errorf("logger.newZapLogger: validation: %w", err)
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.Filename != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    zl.maxSize,
			MaxBackups: zl.maxBackups,
			MaxAge:     zl.maxAge,
			Compress:   true,
		}))
	}

	level := zl.level
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(sinks...),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= level
		}),
	)

	return &ZapLogger{
		logger: zap.New(core,
			zap.Fields(
				zap.String("service", cfg.Service),
				zap.String("env", cfg.Env),
			),
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		),
		level: level,
	}, nil
}

func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}
