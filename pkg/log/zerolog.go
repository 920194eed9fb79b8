package log

import (
	"io"

	"github.com/rs/zerolog"
)

type zl struct {
	zerolog.Logger
	lvl zerolog.Level
}

// NewLogger returns a Logger writing JSON lines to w at the given level.
// An unknown level disables the logger.
func NewLogger(level string, w io.Writer) Logger {
	lvl, er := zerolog.ParseLevel(level)
	if er != nil {
		lvl = zerolog.Disabled
	}
	return &zl{zerolog.New(w).With().Timestamp().Logger().Level(lvl), lvl}
}

func (l *zl) Info(msg string) {
	l.Logger.Info().Msg(msg)
}

func (l *zl) Infof(fmt string, objs ...interface{}) {
	l.Logger.Info().Msgf(fmt, objs...)
}

func (l *zl) Warn(msg string) {
	l.Logger.Warn().Msg(msg)
}

func (l *zl) Warnf(fmt string, objs ...interface{}) {
	l.Logger.Warn().Msgf(fmt, objs...)
}

func (l *zl) Debug(msg string) {
	l.Logger.Debug().Msg(msg)
}

func (l *zl) Debugf(fmt string, objs ...interface{}) {
	l.Logger.Debug().Msgf(fmt, objs...)
}

func (l *zl) IsDebug() bool {
	return l.lvl <= zerolog.DebugLevel
}
