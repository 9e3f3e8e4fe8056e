// Package config user-apiserver 的运行配置。
package config

import (
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/options"
	genericoptions "github.com/maxiaolu1981/cretem/usercrud/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// Config 由校验后的 Options 复制而来，创建后不再修改，按值传递。
type Config struct {
	App                     options.AppOptions
	GenericServerRunOptions genericoptions.ServerRunOptions
	InsecureServing         genericoptions.InsecureServingOptions
	Database                genericoptions.DatabaseOptions
	Log                     log.Options
	FeatureOptions          genericoptions.FeatureOptions
}

// CreateConfigFromOptions 复制 opts，之后对 opts 的修改不会影响返回的 Config。
func CreateConfigFromOptions(opts *options.Options) (Config, error) {
	cfg := Config{
		App:                     *opts.App,
		GenericServerRunOptions: *opts.GenericServerRunOptions,
		InsecureServing:         *opts.InsecureServing,
		Database:                *opts.Database,
		Log:                     *opts.Log,
		FeatureOptions:          *opts.FeatureOptions,
	}

	cfg.GenericServerRunOptions.Middlewares = append([]string(nil), opts.GenericServerRunOptions.Middlewares...)
	cfg.Log.OutputPaths = append([]string(nil), opts.Log.OutputPaths...)
	cfg.Log.ErrorOutputPaths = append([]string(nil), opts.Log.ErrorOutputPaths...)

	return cfg, nil
}
