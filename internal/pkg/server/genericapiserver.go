package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// GenericAPIServer 内嵌 gin.Engine，负责中间件、系统接口和 HTTP 服务的启停。
type GenericAPIServer struct {
	middlewares []string

	InsecureServingInfo *InsecureServingInfo

	ShutdownTimeout time.Duration

	*gin.Engine
	healthz         bool
	enableMetrics   bool
	enableProfiling bool

	insecureServer *http.Server
}

func initGenericAPIServer(s *GenericAPIServer) {
	s.Setup()
	s.InstallMiddlewares()
	s.InstallAPIs()

	s.insecureServer = &http.Server{
		Addr:              s.InsecureServingInfo.Address,
		Handler:           s,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

// InstallAPIs 注册健康检查、指标和性能分析接口。
func (s *GenericAPIServer) InstallAPIs() {
	if s.healthz {
		s.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	if s.enableMetrics {
		prometheus := ginprometheus.NewPrometheus("gin")
		prometheus.Use(s.Engine)
	}

	if s.enableProfiling {
		pprof.Register(s.Engine)
	}
}

// Setup 路由注册信息输出到项目日志。
func (s *GenericAPIServer) Setup() {
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Infof("%-6s %-s --> %s (%d handlers)", httpMethod, absolutePath, handlerName, nuHandlers)
	}
}

// InstallMiddlewares requestid 和 context 总是安装，其余按配置名称安装。
func (s *GenericAPIServer) InstallMiddlewares() {
	s.Use(middleware.RequestID())
	s.Use(middleware.Context())

	for _, m := range s.middlewares {
		mw, ok := middleware.Middlewares[m]
		if !ok {
			log.Warnf("can not find middleware: %s", m)
			continue
		}

		log.Infof("install middleware: %s", m)
		s.Use(mw)
	}
}

// Run 启动 HTTP 服务，阻塞到服务关闭。
func (s *GenericAPIServer) Run() error {
	listener, err := net.Listen("tcp", s.InsecureServingInfo.Address)
	if err != nil {
		return fmt.Errorf("listen on %s failed: %w", s.InsecureServingInfo.Address, err)
	}

	return s.Serve(listener)
}

// Serve 在给定的 listener 上提供服务。
func (s *GenericAPIServer) Serve(listener net.Listener) error {
	var eg errgroup.Group
	stopped := make(chan struct{})

	eg.Go(func() error {
		defer close(stopped)
		log.Infof("Start to listening the incoming requests on http address: %s", listener.Addr().String())

		if err := s.insecureServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		log.Infof("Server on %s stopped", listener.Addr().String())
		return nil
	})

	if s.healthz {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.ping(ctx, listener.Addr().String(), stopped); err != nil {
			s.Close()
			_ = eg.Wait()
			return err
		}
	}

	return eg.Wait()
}

// Close 优雅关闭 HTTP 服务。
func (s *GenericAPIServer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()

	if err := s.insecureServer.Shutdown(ctx); err != nil {
		log.Warnf("Shutdown insecure server failed: %s", err.Error())
	}
}

// ping 请求 /healthz 确认路由已经可以访问，服务提前停止时直接返回。
func (s *GenericAPIServer) ping(ctx context.Context, address string, stopped <-chan struct{}) error {
	if strings.HasPrefix(address, "0.0.0.0:") || strings.HasPrefix(address, "[::]:") {
		_, port, _ := net.SplitHostPort(address)
		address = net.JoinHostPort("127.0.0.1", port)
	}
	url := fmt.Sprintf("http://%s/healthz", address)

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				log.Info("The router has been deployed successfully.")
				return nil
			}
		}

		log.Info("Waiting for the router, retry in 1 second.")
		select {
		case <-stopped:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("can not ping http server within the specified time interval: %w", ctx.Err())
		case <-time.After(time.Second):
		}
	}
}
