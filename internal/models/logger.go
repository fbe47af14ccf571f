package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which queries are logged as warnings.
const slowQuery = 200 * time.Millisecond

// logger sends gorm log output to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	switch level {
	case gorm_logger.Silent:
		return &logger{Logger: l.Logger.Level(zerolog.Disabled)}
	case gorm_logger.Error:
		return &logger{Logger: l.Logger.Level(zerolog.ErrorLevel)}
	case gorm_logger.Warn:
		return &logger{Logger: l.Logger.Level(zerolog.WarnLevel)}
	}
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	// Records that are not found are part of the normal flow, e.g. when
	// checking if an email is already registered
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		l.Logger.Error().Err(err).Str("sql", sql).Dur("duration", elapsed).Int64("rows", rows).Msg("[GORM] query error")
		return
	}

	if elapsed > slowQuery {
		l.Logger.Warn().Str("sql", sql).Dur("duration", elapsed).Int64("rows", rows).Msg("[GORM] slow query")
		return
	}

	l.Logger.Debug().Str("sql", sql).Dur("duration", elapsed).Int64("rows", rows).Msg("[GORM] query")
}
