package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// Context 把请求 ID 放到日志使用的键上，log.L(c) 会自动带出。
func Context() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(log.KeyRequestID, GetRequestIDFromContext(c))
		c.Next()
	}
}
