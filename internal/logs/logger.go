package logs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создает логгер для журнала HTTP запросов.
// В release режиме пишет JSON с уровнем info, иначе console с уровнем debug.
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
//   - error: ошибка создания логгера
func New() (*zap.Logger, error) {
	isProduction := os.Getenv("GIN_MODE") == "release"

	encoding := "console"
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	if isProduction {
		encoding = "json"
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	conf := zap.Config{
		Level:       level,
		Development: !isProduction,
		Encoding:    encoding,
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "ts",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	log, err := conf.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %s", err.Error())
	}
	return log, nil
}

// MustNew создает новый логгер. В случае ошибки вызывает panic.
func MustNew() *zap.Logger {
	log, err := New()
	if err != nil {
		panic(err)
	}
	return log
}
