package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

func (l Level) IsValid() bool {
	_, ok := levelsMapping[l.normalized()]
	return ok
}

//ParseLevel returns the level named by s (case-insensitive).
func ParseLevel(s string) (Level, error) {
	lvl := Level(s).normalized()
	if !lvl.IsValid() {
		return "", fmt.Errorf("logging level %q does not exist, permitted values are: %v, %v, %v, %v",
			s, DebugLevel, InfoLevel, WarnLevel, ErrorLevel)
	}
	return lvl, nil
}

func (l Level) normalized() Level {
	return Level(strings.ToLower(strings.TrimSpace(string(l))))
}

var levelsMapping = map[Level]zapcore.Level{
	DebugLevel: zap.DebugLevel,
	InfoLevel:  zap.InfoLevel,
	WarnLevel:  zap.WarnLevel,
	ErrorLevel: zap.ErrorLevel,
}
