package middleware

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
)

var defaultLogFormatter = func(param gin.LogFormatterParams) string {
	var statusColor, methodColor, resetColor string
	if param.IsOutputColor() {
		statusColor = param.StatusCodeColor()
		methodColor = param.MethodColor()
		resetColor = param.ResetColor()
	}

	if param.Latency > time.Minute {
		param.Latency -= param.Latency % time.Second
	}

	requestID, _ := param.Keys[XRequestIDKey].(string)

	return fmt.Sprintf("%s%3d%s - [%s] \"%v %s%s%s %s\" %s %s\n",
		statusColor, param.StatusCode, resetColor,
		param.ClientIP,
		param.Latency,
		methodColor, param.Method, resetColor,
		param.Path,
		requestID,
		param.ErrorMessage,
	)
}

// Logger 使用默认格式输出访问日志。
func Logger() gin.HandlerFunc {
	return LoggerWithConfig(gin.LoggerConfig{})
}

// LoggerWithWriter 输出到 out，notlogged 中的路径不记录。
func LoggerWithWriter(out io.Writer, notlogged ...string) gin.HandlerFunc {
	return LoggerWithConfig(gin.LoggerConfig{
		Output:    out,
		SkipPaths: notlogged,
	})
}

// LoggerWithConfig 输出是终端时打开彩色。
func LoggerWithConfig(conf gin.LoggerConfig) gin.HandlerFunc {
	if conf.Formatter == nil {
		conf.Formatter = defaultLogFormatter
	}

	if conf.Output == nil {
		conf.Output = gin.DefaultWriter
	}

	if w, ok := conf.Output.(*os.File); ok && os.Getenv("TERM") != "dumb" &&
		(isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())) {
		gin.ForceConsoleColor()
	}

	return gin.LoggerWithConfig(conf)
}
