package apiserver

import "github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/config"

// Run 创建并运行 API 服务器，直到收到退出信号。
func Run(cfg config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}
