// Package shutdown 在收到关闭事件后按注册顺序执行清理回调。
//
// 用法：
//
//	gs := shutdown.New()
//	gs.AddShutdownManager(posixsignal.NewPosixSignalManager())
//	gs.AddShutdownCallback(shutdown.ShutdownFunc(func(string) error {
//		server.Close()
//		return nil
//	}))
//	if err := gs.Start(); err != nil {
//		return err
//	}
//	<-gs.Done()
package shutdown

import (
	"sync"
)

// ShutdownCallback 关闭时执行的回调，参数为触发关闭的管理器名称。
type ShutdownCallback interface {
	OnShutdown(string) error
}

// ShutdownFunc 函数形式的 ShutdownCallback。
type ShutdownFunc func(string) error

// OnShutdown 调用 f。
func (f ShutdownFunc) OnShutdown(shutdownManager string) error {
	return f(shutdownManager)
}

// ShutdownManager 监听关闭事件（如系统信号）并调用 GSInterface.StartShutdown。
type ShutdownManager interface {
	GetName() string
	Start(gs GSInterface) error
	ShutdownStart() error
	ShutdownFinish() error
}

// ErrorHandler 处理关闭过程中产生的错误。
type ErrorHandler interface {
	OnError(err error)
}

// ErrorFunc 函数形式的 ErrorHandler。
type ErrorFunc func(err error)

// OnError 调用 f。
func (f ErrorFunc) OnError(err error) {
	f(err)
}

// GSInterface 提供给 ShutdownManager 的接口。
type GSInterface interface {
	StartShutdown(sm ShutdownManager)
	ReportError(err error)
	AddShutdownCallback(shutdownCallback ShutdownCallback)
}

// GracefulShutdown 管理关闭管理器和回调。
type GracefulShutdown struct {
	mu           sync.Mutex
	callbacks    []ShutdownCallback
	managers     []ShutdownManager
	errorHandler ErrorHandler

	once sync.Once
	done chan struct{}
}

// New 创建 GracefulShutdown。
func New() *GracefulShutdown {
	return &GracefulShutdown{
		callbacks: make([]ShutdownCallback, 0, 10),
		managers:  make([]ShutdownManager, 0, 3),
		done:      make(chan struct{}),
	}
}

// Start 启动所有管理器。
func (gs *GracefulShutdown) Start() error {
	for _, manager := range gs.managers {
		if err := manager.Start(gs); err != nil {
			return err
		}
	}

	return nil
}

// AddShutdownManager 添加关闭管理器。
func (gs *GracefulShutdown) AddShutdownManager(manager ShutdownManager) {
	gs.managers = append(gs.managers, manager)
}

// AddShutdownCallback 添加回调，回调按添加顺序依次执行。
func (gs *GracefulShutdown) AddShutdownCallback(shutdownCallback ShutdownCallback) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.callbacks = append(gs.callbacks, shutdownCallback)
}

// SetErrorHandler 设置错误处理器。
func (gs *GracefulShutdown) SetErrorHandler(errorHandler ErrorHandler) {
	gs.errorHandler = errorHandler
}

// StartShutdown 执行全部回调，只有第一次调用生效，结束后关闭 Done 通道。
func (gs *GracefulShutdown) StartShutdown(sm ShutdownManager) {
	gs.once.Do(func() {
		defer close(gs.done)

		gs.ReportError(sm.ShutdownStart())

		gs.mu.Lock()
		callbacks := append([]ShutdownCallback(nil), gs.callbacks...)
		gs.mu.Unlock()

		for _, shutdownCallback := range callbacks {
			gs.ReportError(shutdownCallback.OnShutdown(sm.GetName()))
		}

		gs.ReportError(sm.ShutdownFinish())
	})
}

// Done 在 StartShutdown 完成后关闭。
func (gs *GracefulShutdown) Done() <-chan struct{} {
	return gs.done
}

// ReportError 把非 nil 错误交给错误处理器。
func (gs *GracefulShutdown) ReportError(err error) {
	if err != nil && gs.errorHandler != nil {
		gs.errorHandler.OnError(err)
	}
}
