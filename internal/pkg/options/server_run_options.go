// Package options 通用 API 服务器各部分的命令行与配置文件选项。
package options

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/server"
)

// ServerRunOptions 服务器运行模式、健康检查和中间件列表。
type ServerRunOptions struct {
	Mode        string   `json:"mode"        mapstructure:"mode"`
	Healthz     bool     `json:"healthz"     mapstructure:"healthz"`
	Middlewares []string `json:"middlewares" mapstructure:"middlewares"`
}

// NewServerRunOptions 默认值取自 server.NewConfig。
func NewServerRunOptions() *ServerRunOptions {
	defaults := server.NewConfig()

	return &ServerRunOptions{
		Mode:        defaults.Mode,
		Healthz:     defaults.Healthz,
		Middlewares: defaults.Middlewares,
	}
}

// ApplyTo 写入 server.Config。
func (s *ServerRunOptions) ApplyTo(c *server.Config) error {
	c.Mode = s.Mode
	c.Healthz = s.Healthz
	c.Middlewares = s.Middlewares

	return nil
}

// Validate 校验运行模式和中间件名称。
func (s *ServerRunOptions) Validate() []error {
	var errs []error

	switch s.Mode {
	case gin.DebugMode, gin.TestMode, gin.ReleaseMode:
	default:
		errs = append(errs, fmt.Errorf("--server.mode %q 无效，支持的模式：debug、test、release", s.Mode))
	}

	for i, mw := range s.Middlewares {
		if strings.TrimSpace(mw) == "" {
			errs = append(errs, fmt.Errorf("--server.middlewares 中存在空值（索引：%d）", i))
		}
	}

	return errs
}

// AddFlags 绑定 server.* 参数。
func (s *ServerRunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.Mode, "server.mode", s.Mode, ""+
		"以指定模式启动服务器，支持的模式：debug、test、release。")

	fs.BoolVar(&s.Healthz, "server.healthz", s.Healthz, ""+
		"添加自身就绪检查并安装 /healthz 路由。")

	fs.StringSliceVar(&s.Middlewares, "server.middlewares", s.Middlewares, ""+
		"服务器允许的中间件列表，逗号分隔。为空时使用默认中间件。")
}
