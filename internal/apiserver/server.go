package apiserver

import (
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/config"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store/sqldb"
	genericapiserver "github.com/maxiaolu1981/cretem/usercrud/internal/pkg/server"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/shutdown"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/shutdown/shutdownmanagers/posixsignal"
)

type apiServer struct {
	gs               *shutdown.GracefulShutdown
	signalManager    shutdown.ShutdownManager
	factory          store.Factory
	genericAPIServer *genericapiserver.GenericAPIServer
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg config.Config) (*apiServer, error) {
	gs := shutdown.New()
	signalManager := posixsignal.NewPosixSignalManager()
	gs.AddShutdownManager(signalManager)
	gs.SetErrorHandler(shutdown.ErrorFunc(func(err error) {
		log.Errorf("graceful shutdown: %s", err.Error())
	}))

	genericConfig, err := buildGenericConfig(cfg)
	if err != nil {
		return nil, err
	}

	factory, err := sqldb.GetFactoryOr(cfg.Database.ToDBOptions())
	if err != nil {
		return nil, err
	}

	genericServer, err := genericConfig.Complete().New()
	if err != nil {
		_ = factory.Close()
		return nil, err
	}

	return newAPIServer(gs, signalManager, factory, genericServer), nil
}

func newAPIServer(
	gs *shutdown.GracefulShutdown,
	signalManager shutdown.ShutdownManager,
	factory store.Factory,
	genericServer *genericapiserver.GenericAPIServer,
) *apiServer {
	return &apiServer{
		gs:               gs,
		signalManager:    signalManager,
		factory:          factory,
		genericAPIServer: genericServer,
	}
}

// PrepareRun 注册路由和关闭回调：先停止 HTTP 服务，再关闭存储。
func (s *apiServer) PrepareRun() preparedAPIServer {
	initRouter(s.genericAPIServer.Engine, s.factory)

	s.gs.AddShutdownCallback(shutdown.ShutdownFunc(func(string) error {
		s.genericAPIServer.Close()
		return nil
	}))

	s.gs.AddShutdownCallback(shutdown.ShutdownFunc(func(string) error {
		log.Info("closing user store")
		return s.factory.Close()
	}))

	return preparedAPIServer{s}
}

// Run 阻塞到 HTTP 服务停止且所有关闭回调执行完毕。
func (s preparedAPIServer) Run() error {
	if err := s.gs.Start(); err != nil {
		return err
	}

	// 启动失败时主动触发关闭，同样等待回调（包括关闭存储）执行完毕。
	err := s.genericAPIServer.Run()
	if err != nil {
		s.gs.StartShutdown(s.signalManager)
	}

	<-s.gs.Done()

	return err
}

func buildGenericConfig(cfg config.Config) (genericConfig *genericapiserver.Config, lastErr error) {
	genericConfig = genericapiserver.NewConfig()
	if lastErr = cfg.GenericServerRunOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.FeatureOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.InsecureServing.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	return
}
