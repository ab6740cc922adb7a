package log

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/TopiaNetwork/gascost/configuration"
	logcomm "github.com/TopiaNetwork/gascost/log/common"
	"github.com/TopiaNetwork/gascost/log/zerologger"
)

type LogFormat uint8

const (
	TextFormat LogFormat = iota
	JSONFormat
)

type LogOutput uint8

const (
	StdErrOutput LogOutput = iota
	FileLogOutput
)

type Logger interface {
	//log a message at a debug level
	Debug(msg string)
	//log a formatted message at a debug level
	Debugf(string, ...interface{})
	//log a message at an info level
	Info(msg string)
	//log a formatted message at an info level
	Infof(string, ...interface{})
	//log a formatted message at a warn level
	Warnf(string, ...interface{})
	//log a formatted message at an error level
	Errorf(string, ...interface{})

	//update the logger level
	UpdateLoggerLevel(level logcomm.LogLevel)

	//release the output owned by a main logger; no-op for stderr and module loggers
	Close() error
}

const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

func (l LogFormat) String() string {
	switch l {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return fmt.Sprintf("LogFormat(%d)", uint8(l))
}

func (o LogOutput) String() string {
	switch o {
	case StdErrOutput:
		return "stderr"
	case FileLogOutput:
		return "filelog"
	}
	return fmt.Sprintf("LogOutput(%d)", uint8(o))
}

func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown log format %q", s)
}

func ParseLogOutput(s string) (LogOutput, error) {
	switch strings.ToLower(s) {
	case "", "stderr":
		return StdErrOutput, nil
	case "filelog", "file":
		return FileLogOutput, nil
	}
	return StdErrOutput, fmt.Errorf("unknown log output %q", s)
}

func newDefaultTextOutput(out io.Writer) io.Writer {
	return &zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: TimestampFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
	}
}

func selectFormatOutput(format LogFormat, output io.Writer) (io.Writer, error) {
	switch format {
	case TextFormat:
		return newDefaultTextOutput(output), nil
	case JSONFormat:
		return output, nil
	default:
		return nil, errors.New("unknown formatter " + format.String())
	}
}

// generateOutput returns the writer and, for outputs the logger opened itself, its closer.
func generateOutput(output LogOutput, param string) (io.Writer, io.Closer, error) {
	switch output {
	case StdErrOutput:
		return os.Stderr, nil, nil
	case FileLogOutput:
		if param == "" {
			return nil, nil, errors.New("generateOutput err: fileFullPath blank")
		}
		f, err := os.OpenFile(param, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	default:
		return nil, nil, errors.New("unknown output type " + output.String())
	}
}

// CreateMainLogger opens the requested output; callers Close the logger when done with it.
func CreateMainLogger(level logcomm.LogLevel, format LogFormat, output LogOutput, param string) (Logger, error) {
	outputW, closer, err := generateOutput(output, param)
	if err != nil {
		return nil, err
	}

	wr, err := selectFormatOutput(format, outputW)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	return zerologger.NewLogger(logcomm.ToZerologLevel(level), wr, closer), nil
}

// CreateWriterLogger builds a logger over a writer the caller keeps ownership of.
func CreateWriterLogger(level logcomm.LogLevel, format LogFormat, w io.Writer) (Logger, error) {
	wr, err := selectFormatOutput(format, w)
	if err != nil {
		return nil, err
	}

	return zerologger.NewLogger(logcomm.ToZerologLevel(level), wr, nil), nil
}

func CreateLoggerFromConfig(config *configuration.LogConfiguration) (Logger, error) {
	level, err := logcomm.ParseLogLevel(config.Level)
	if err != nil {
		return nil, err
	}
	format, err := ParseLogFormat(config.Format)
	if err != nil {
		return nil, err
	}
	output, err := ParseLogOutput(config.Output)
	if err != nil {
		return nil, err
	}

	return CreateMainLogger(level, format, output, config.Path)
}

// DiscardLogger drops every entry; handy for tests and library callers that pass no logger.
func DiscardLogger() Logger {
	return zerologger.NewLogger(zerolog.Disabled, ioutil.Discard, nil)
}

func CreateModuleLogger(level logcomm.LogLevel, module string, l Logger) Logger {
	if zl, ok := l.(*zerologger.ZeroLogger); ok {
		return zl.CreateModuleLogger(logcomm.ToZerologLevel(level), module)
	}

	return l
}

func WithField(l Logger, key string, value interface{}) Logger {
	if zl, ok := l.(*zerologger.ZeroLogger); ok {
		return zl.WithField(key, value)
	}

	return l
}
