package log

import "context"

type key int

const logContextKey key = iota

// 请求链路上写入 gin.Context 的字段名。
const (
	KeyRequestID = "requestID"
	KeyUsername  = "username"
)

func (l *zapLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, logContextKey, l)
}

func WithContext(ctx context.Context) context.Context {
	return global().WithContext(ctx)
}

// FromContext 取出 ctx 中保存的日志器，没有时返回全局日志器。
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(logContextKey).(Logger); ok {
			return logger
		}
	}

	return global()
}

// L 返回带上请求 ID 的日志器。
func L(ctx context.Context) Logger {
	lg := FromContext(ctx)
	if ctx == nil {
		return lg
	}

	if requestID, ok := ctx.Value(KeyRequestID).(string); ok && requestID != "" {
		lg = lg.WithValues(KeyRequestID, requestID)
	}

	return lg
}
