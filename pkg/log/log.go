// Package log 基于 zap 的结构化日志封装，业务代码只依赖本包。
package log

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field 和 zap.Field 相同，业务代码不直接引用 zap。
type Field = zapcore.Field

var (
	String   = zap.String
	Int      = zap.Int
	Uint64   = zap.Uint64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Err      = zap.Error
)

// Logger 日志接口，V 风格的分级由 zap 级别代替。
type Logger interface {
	Debugf(format string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Infof(format string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnf(format string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorf(format string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	WithValues(keysAndValues ...interface{}) Logger
	WithName(name string) Logger
	WithContext(ctx context.Context) context.Context
	Flush()
}

var _ Logger = &zapLogger{}

type zapLogger struct {
	zapLogger *zap.Logger
}

var (
	mu  sync.Mutex
	std = New(NewOptions())
)

// Init 用 opts 替换全局日志器。
func Init(opts *Options) {
	mu.Lock()
	defer mu.Unlock()
	std = New(opts)
}

// New 按配置创建一个新的日志器，配置非法时退回 info 级别的 console 输出。
func New(opts *Options) *zapLogger {
	if opts == nil {
		opts = NewOptions()
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(opts.Level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if opts.Format == consoleFormat && opts.EnableColor {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     timeEncoder,
		EncodeDuration: milliSecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	format := strings.ToLower(opts.Format)
	if format != jsonFormat {
		format = consoleFormat
	}

	loggerConfig := &zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel),
		Development:       false,
		DisableCaller:     !opts.EnableCaller,
		DisableStacktrace: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      opts.OutputPaths,
		ErrorOutputPaths: opts.ErrorOutputPaths,
	}

	l, err := loggerConfig.Build(zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("初始化日志失败: %v", err))
	}

	return &zapLogger{zapLogger: l.Named("user-apiserver")}
}

// NewLogger 包装一个已有的 zap.Logger，测试里常配合 zaptest/observer 使用。
func NewLogger(l *zap.Logger) Logger {
	return &zapLogger{zapLogger: l}
}

// ZapLogger 返回全局的底层 zap.Logger。
func ZapLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return std.zapLogger
}

// ReplaceGlobal 替换全局日志器，返回恢复函数。
func ReplaceGlobal(l *zap.Logger) func() {
	mu.Lock()
	prev := std
	std = &zapLogger{zapLogger: l}
	mu.Unlock()

	return func() {
		mu.Lock()
		std = prev
		mu.Unlock()
	}
}

func global() *zapLogger {
	mu.Lock()
	defer mu.Unlock()
	return std
}

func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.zapLogger.Sugar().Debugf(format, args...)
}

func (l *zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.zapLogger.Sugar().Infof(format, args...)
}

func (l *zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.zapLogger.Sugar().Warnf(format, args...)
}

func (l *zapLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.zapLogger.Sugar().Errorf(format, args...)
}

func (l *zapLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Errorw(msg, keysAndValues...)
}

func (l *zapLogger) WithValues(keysAndValues ...interface{}) Logger {
	return &zapLogger{zapLogger: l.zapLogger.Sugar().With(keysAndValues...).Desugar()}
}

func (l *zapLogger) WithName(name string) Logger {
	return &zapLogger{zapLogger: l.zapLogger.Named(name)}
}

func (l *zapLogger) Flush() {
	_ = l.zapLogger.Sync()
}

func Debug(msg string, fields ...Field) { global().zapLogger.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { global().zapLogger.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { global().zapLogger.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { global().zapLogger.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { global().zapLogger.Fatal(msg, fields...) }

func Debugf(format string, v ...interface{}) { global().zapLogger.Sugar().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { global().zapLogger.Sugar().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { global().zapLogger.Sugar().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { global().zapLogger.Sugar().Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { global().zapLogger.Sugar().Fatalf(format, v...) }

func Debugw(msg string, keysAndValues ...interface{}) {
	global().zapLogger.Sugar().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	global().zapLogger.Sugar().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	global().zapLogger.Sugar().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	global().zapLogger.Sugar().Errorw(msg, keysAndValues...)
}

func WithValues(keysAndValues ...interface{}) Logger { return global().WithValues(keysAndValues...) }

func WithName(name string) Logger { return global().WithName(name) }

func Flush() { global().Flush() }

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func milliSecondsDurationEncoder(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendFloat64(float64(d) / float64(time.Millisecond))
}
