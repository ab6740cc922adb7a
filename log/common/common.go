package common

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel uint8

// NoLevel means it should be ignored
const (
	NoLevel LogLevel = iota
	TraceLevel
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
	maxLogLevel
)

var levelMapping = []zerolog.Level{
	NoLevel:    zerolog.NoLevel,
	TraceLevel: zerolog.TraceLevel,
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
	FatalLevel: zerolog.FatalLevel,
}

var levelNames = []string{
	NoLevel:    "",
	TraceLevel: "trace",
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

func ToZerologLevel(level LogLevel) zerolog.Level {
	if level >= maxLogLevel {
		return zerolog.NoLevel
	}
	return levelMapping[level]
}

func (l LogLevel) String() string {
	if l >= maxLogLevel {
		return fmt.Sprintf("LogLevel(%d)", uint8(l))
	}
	return levelNames[l]
}

func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i := TraceLevel; i < maxLogLevel; i++ {
		if levelNames[i] == name {
			return i, nil
		}
	}
	return NoLevel, fmt.Errorf("unknown log level %q", s)
}
