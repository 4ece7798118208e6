package log

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Sync() error
}

//New builds a logger that writes to the standard output and, if logFile is not empty, appends to logFile as well.
//Errors of the underlying writers (e.g. the log file became unwritable) are reported to the standard output only.
func New(lvl Level, logFile string) (Logger, error) {
	outputs := []string{"stdout"}
	if logFile != "" {
		outputs = append(outputs, logFile)
	}
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(levelsMapping[lvl.normalized()]),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "lvl",
			TimeKey:        "ts",
			NameKey:        "logger",
			CallerKey:      zapcore.OmitKey,
			FunctionKey:    zapcore.OmitKey,
			StacktraceKey:  "stack",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stdout"},
	}.Build()
}

func String(key, val string) Field {
	return zap.String(key, val)
}

func Uint64(key string, val uint64) Field {
	return zap.Uint64(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

//Cause is a shortcut for the error field.
func Cause(err error) Field {
	return zap.Error(err)
}
