// Package apiserver user-apiserver 的启动入口：命令行、配置、存储和 HTTP 服务的装配。
package apiserver

import (
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/config"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/options"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/app"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

const commandDesc = `The user API server manages user records over a REST API.
It supports listing, reading, creating, updating and deleting users,
backed by sqlite (default) or MySQL.`

// NewApp 创建 user-apiserver 命令。
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("User API Server",
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log.Init(opts.Log)
		defer log.Flush()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
