package options

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/server"
)

// InsecureServingOptions 未加密 HTTP 服务的监听地址。
type InsecureServingOptions struct {
	BindAddress string `json:"bind-address" mapstructure:"bind-address"`
	BindPort    int    `json:"bind-port"    mapstructure:"bind-port"`
}

// NewInsecureServingOptions 默认只监听本地回环地址。
func NewInsecureServingOptions() *InsecureServingOptions {
	return &InsecureServingOptions{
		BindAddress: "127.0.0.1",
		BindPort:    8080,
	}
}

// Address 返回 host:port。
func (s *InsecureServingOptions) Address() string {
	return net.JoinHostPort(s.BindAddress, strconv.Itoa(s.BindPort))
}

// ApplyTo 写入 server.Config。
func (s *InsecureServingOptions) ApplyTo(c *server.Config) error {
	c.InsecureServing = &server.InsecureServingInfo{
		Address: s.Address(),
	}

	return nil
}

// Validate 校验端口范围和地址格式。
func (s *InsecureServingOptions) Validate() []error {
	var errors []error

	if s.BindPort < 1 || s.BindPort > 65535 {
		errors = append(errors, fmt.Errorf("--insecure.bind-port %v 必须在 1-65535 范围内", s.BindPort))
	}

	if s.BindAddress != "" && net.ParseIP(s.BindAddress) == nil && s.BindAddress != "localhost" {
		errors = append(errors, fmt.Errorf("--insecure.bind-address %q 不是合法的 IP 地址", s.BindAddress))
	}

	return errors
}

// AddFlags 绑定 insecure.* 参数。
func (s *InsecureServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.BindAddress, "insecure.bind-address", s.BindAddress, ""+
		"用于监听 --insecure.bind-port 的 IP 地址（0.0.0.0 表示所有 IPv4 接口，:: 表示所有 IPv6 接口）。")

	fs.IntVar(&s.BindPort, "insecure.bind-port", s.BindPort, ""+
		"提供未加密、未认证访问的端口。")
}
