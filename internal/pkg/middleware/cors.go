package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors 允许任意来源访问，接口本身没有鉴权。
func Cors() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", XRequestIDKey},
		ExposeHeaders:    []string{XRequestIDKey},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
