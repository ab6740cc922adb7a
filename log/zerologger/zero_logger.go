package zerologger

import (
	"io"

	"github.com/rs/zerolog"

	logcomm "github.com/TopiaNetwork/gascost/log/common"
)

type ZeroLogger struct {
	log    *zerolog.Logger
	closer io.Closer //owned output, nil for stderr and for child loggers
}

// NewLogger writes to w; closer, when non-nil, is released by Close.
func NewLogger(level zerolog.Level, w io.Writer, closer io.Closer) *ZeroLogger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &ZeroLogger{log: &zl, closer: closer}
}

func (zl *ZeroLogger) Debug(msg string) {
	zl.log.Debug().Msg(msg)
}

func (zl *ZeroLogger) Debugf(format string, args ...interface{}) {
	zl.log.Debug().Msgf(format, args...)
}

func (zl *ZeroLogger) Info(msg string) {
	zl.log.Info().Msg(msg)
}

func (zl *ZeroLogger) Infof(format string, args ...interface{}) {
	zl.log.Info().Msgf(format, args...)
}

func (zl *ZeroLogger) Warnf(format string, args ...interface{}) {
	zl.log.Warn().Msgf(format, args...)
}

func (zl *ZeroLogger) Errorf(format string, args ...interface{}) {
	zl.log.Error().Msgf(format, args...)
}

// WithField returns a child logger that stamps every entry with key=value.
func (zl *ZeroLogger) WithField(key string, value interface{}) *ZeroLogger {
	child := zl.log.With().Interface(key, value).Logger()

	return &ZeroLogger{log: &child}
}

func (zl *ZeroLogger) UpdateLoggerLevel(level logcomm.LogLevel) {
	zxNew := zl.log.Level(logcomm.ToZerologLevel(level))
	zl.log = &zxNew
}

func (zl *ZeroLogger) CreateModuleLogger(level zerolog.Level, module string) *ZeroLogger {
	mLog := zl.log.With().Str("module", module).Logger().Level(level)

	return &ZeroLogger{log: &mLog}
}

func (zl *ZeroLogger) Close() error {
	if zl.closer == nil {
		return nil
	}
	err := zl.closer.Close()
	zl.closer = nil

	return err
}
