package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/logger"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormLoggerAdapter 把 gorm 的 SQL 日志转到项目日志上。
type gormLoggerAdapter struct {
	config logger.Config
}

func newGormLogger(opts *Options) logger.Interface {
	cfg := logger.Config{
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
		SlowThreshold:             opts.SlowQueryThreshold,
		LogLevel:                  toGormLogLevel(opts.LogLevel),
	}

	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = defaultSlowQueryThreshold
	}

	return &gormLoggerAdapter{config: cfg}
}

func (g *gormLoggerAdapter) LogMode(level logger.LogLevel) logger.Interface {
	clone := *g
	clone.config.LogLevel = level
	return &clone
}

func (g *gormLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.config.LogLevel < logger.Info {
		return
	}
	log.L(ctx).Infof("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.config.LogLevel < logger.Warn {
		return
	}
	log.L(ctx).Warnf("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.config.LogLevel < logger.Error {
		return
	}
	log.L(ctx).Errorf("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.config.LogLevel == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && g.config.LogLevel >= logger.Error:
		sql, rows := fc()
		log.L(ctx).Errorw("[gorm] query failed", "error", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case elapsed > g.config.SlowThreshold && g.config.LogLevel >= logger.Warn:
		sql, rows := fc()
		log.L(ctx).Warnw("[gorm] slow query", "threshold", g.config.SlowThreshold, "elapsed", elapsed, "rows", rows, "sql", sql)
	case g.config.LogLevel >= logger.Info:
		sql, rows := fc()
		log.L(ctx).Debugw("[gorm] query", "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}

// toGormLogLevel 0 静默，1 错误，2 警告，其余为 info。
func toGormLogLevel(level int) logger.LogLevel {
	switch level {
	case 0:
		return logger.Silent
	case 1:
		return logger.Error
	case 2:
		return logger.Warn
	default:
		return logger.Info
	}
}
