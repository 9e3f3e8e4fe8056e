// Package options 汇总 user-apiserver 的全部命令行选项。
package options

import (
	"fmt"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"

	genericoptions "github.com/maxiaolu1981/cretem/usercrud/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/cliflag"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// DefaultMiddlewares 未配置 server.middlewares 时安装的中间件。
var DefaultMiddlewares = []string{"recovery", "secure", "nocache", "cors", "logger"}

// AppOptions 应用自身的设置。
type AppOptions struct {
	Name  string `json:"name"  mapstructure:"name"`
	Debug bool   `json:"debug" mapstructure:"debug"`
}

// NewAppOptions 返回默认值。
func NewAppOptions() *AppOptions {
	return &AppOptions{
		Name:  "fast-api-project",
		Debug: false,
	}
}

func (o *AppOptions) Validate() []error {
	var errs []error
	if o.Name == "" {
		errs = append(errs, fmt.Errorf("--app.name 不能为空"))
	}

	return errs
}

// AddFlags 绑定 app.* 参数。
func (o *AppOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Name, "app.name", o.Name, "应用名称，用于日志和启动信息。")
	fs.BoolVar(&o.Debug, "app.debug", o.Debug, "调试模式：gin 以 debug 模式运行，并打印完整的请求和响应。")
}

// Options 运行 user-apiserver 所需的全部选项。
type Options struct {
	App                     *AppOptions                            `json:"app"      mapstructure:"app"`
	GenericServerRunOptions *genericoptions.ServerRunOptions       `json:"server"   mapstructure:"server"`
	InsecureServing         *genericoptions.InsecureServingOptions `json:"insecure" mapstructure:"insecure"`
	Database                *genericoptions.DatabaseOptions        `json:"db"       mapstructure:"db"`
	Log                     *log.Options                           `json:"log"      mapstructure:"log"`
	FeatureOptions          *genericoptions.FeatureOptions         `json:"feature"  mapstructure:"feature"`
}

// NewOptions 创建带默认值的 Options。
func NewOptions() *Options {
	o := Options{
		App:                     NewAppOptions(),
		GenericServerRunOptions: genericoptions.NewServerRunOptions(),
		InsecureServing:         genericoptions.NewInsecureServingOptions(),
		Database:                genericoptions.NewDatabaseOptions(),
		Log:                     log.NewOptions(),
		FeatureOptions:          genericoptions.NewFeatureOptions(),
	}
	o.GenericServerRunOptions.Middlewares = append([]string(nil), DefaultMiddlewares...)

	return &o
}

// Flags 按分组返回所有参数。
func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.App.AddFlags(fss.FlagSet("app"))
	o.GenericServerRunOptions.AddFlags(fss.FlagSet("generic"))
	o.InsecureServing.AddFlags(fss.FlagSet("insecure serving"))
	o.Database.AddFlags(fss.FlagSet("database"))
	o.FeatureOptions.AddFlags(fss.FlagSet("features"))
	o.Log.AddFlags(fss.FlagSet("logs"))

	return fss
}

// Validate 汇总各组选项的校验错误。
func (o *Options) Validate() []error {
	var errs []error

	errs = append(errs, o.App.Validate()...)
	errs = append(errs, o.GenericServerRunOptions.Validate()...)
	errs = append(errs, o.InsecureServing.Validate()...)
	errs = append(errs, o.Database.Validate()...)
	errs = append(errs, o.FeatureOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)

	return errs
}

// Complete 调试模式下切换 gin 到 debug 并安装 dump 中间件。
func (o *Options) Complete() error {
	if !o.App.Debug {
		return nil
	}

	o.GenericServerRunOptions.Mode = gin.DebugMode
	for _, m := range o.GenericServerRunOptions.Middlewares {
		if m == "dump" {
			return nil
		}
	}
	o.GenericServerRunOptions.Middlewares = append(o.GenericServerRunOptions.Middlewares, "dump")

	return nil
}

func (o *Options) String() string {
	data, _ := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(o)

	return string(data)
}
