package options

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/server"
)

// FeatureOptions 可选的系统功能。
type FeatureOptions struct {
	EnableProfiling bool          `json:"profiling"        mapstructure:"profiling"`
	EnableMetrics   bool          `json:"enable-metrics"   mapstructure:"enable-metrics"`
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`
}

func NewFeatureOptions() *FeatureOptions {
	defaults := server.NewConfig()

	return &FeatureOptions{
		EnableMetrics:   defaults.EnableMetrics,
		EnableProfiling: defaults.EnableProfiling,
		ShutdownTimeout: defaults.ShutdownTimeout,
	}
}

// ApplyTo 写入 server.Config。
func (o *FeatureOptions) ApplyTo(c *server.Config) error {
	c.EnableProfiling = o.EnableProfiling
	c.EnableMetrics = o.EnableMetrics
	c.ShutdownTimeout = o.ShutdownTimeout

	return nil
}

func (o *FeatureOptions) Validate() []error {
	return []error{}
}

// AddFlags 绑定 feature.* 参数。
func (o *FeatureOptions) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		return
	}

	fs.BoolVar(&o.EnableProfiling, "feature.profiling", o.EnableProfiling,
		"通过 web 接口 host:port/debug/pprof/ 开启性能分析。")

	fs.BoolVar(&o.EnableMetrics, "feature.enable-metrics", o.EnableMetrics,
		"在 /metrics 暴露 Prometheus 指标。")

	fs.DurationVar(&o.ShutdownTimeout, "feature.shutdown-timeout", o.ShutdownTimeout,
		"优雅关闭时等待进行中请求完成的最长时间。")
}
