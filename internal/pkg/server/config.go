package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Config 通用 API 服务器的配置。
type Config struct {
	InsecureServing *InsecureServingInfo
	Mode            string
	Middlewares     []string
	Healthz         bool
	EnableProfiling bool
	EnableMetrics   bool
	ShutdownTimeout time.Duration
}

// InsecureServingInfo HTTP 服务地址。
type InsecureServingInfo struct {
	Address string
}

// NewConfig 返回默认配置。
func NewConfig() *Config {
	return &Config{
		InsecureServing: &InsecureServingInfo{Address: "127.0.0.1:8080"},
		Healthz:         true,
		Mode:            gin.ReleaseMode,
		Middlewares:     []string{},
		EnableProfiling: false,
		EnableMetrics:   true,
		ShutdownTimeout: 10 * time.Second,
	}
}

// CompletedConfig 已补全的配置。
type CompletedConfig struct {
	*Config
}

// Complete 补全缺省值。
func (c *Config) Complete() CompletedConfig {
	if c.InsecureServing == nil {
		c.InsecureServing = &InsecureServingInfo{Address: "127.0.0.1:8080"}
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}

	return CompletedConfig{c}
}

// New 基于配置创建 GenericAPIServer。
func (c CompletedConfig) New() (*GenericAPIServer, error) {
	gin.SetMode(c.Mode)

	s := &GenericAPIServer{
		InsecureServingInfo: c.InsecureServing,
		ShutdownTimeout:     c.ShutdownTimeout,
		healthz:             c.Healthz,
		enableMetrics:       c.EnableMetrics,
		enableProfiling:     c.EnableProfiling,
		middlewares:         c.Middlewares,
		Engine:              gin.New(),
	}

	initGenericAPIServer(s)

	return s, nil
}
