package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger forwards GORM traces to slog, except unique-key conflicts. Those
// surface to clients as DUPLICATE_NAME and are not server errors.
type queryLogger struct {
	logger.Interface
}

// NewQueryLogger builds the GORM logger used by Open.
func NewQueryLogger(l *slog.Logger) logger.Interface {
	return queryLogger{logger.NewSlogLogger(l, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})}
}

func (q queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	return queryLogger{q.Interface.LogMode(level)}
}

func (q queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = nil
	}
	q.Interface.Trace(ctx, begin, fc, err)
}
