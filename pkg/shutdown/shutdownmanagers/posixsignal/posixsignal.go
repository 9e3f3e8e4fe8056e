// Package posixsignal 收到 POSIX 信号时触发优雅关闭。
package posixsignal

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/shutdown"
)

// Name 管理器名称。
const Name = "PosixSignalManager"

// PosixSignalManager 监听 POSIX 信号。
type PosixSignalManager struct {
	signals []os.Signal
}

// NewPosixSignalManager 未指定信号时监听 SIGINT 和 SIGTERM。
func NewPosixSignalManager(sig ...os.Signal) *PosixSignalManager {
	if len(sig) == 0 {
		sig = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	return &PosixSignalManager{
		signals: sig,
	}
}

// GetName 返回 Name。
func (posixSignalManager *PosixSignalManager) GetName() string {
	return Name
}

// Start 注册信号监听，收到第一个信号后调用 gs.StartShutdown。
func (posixSignalManager *PosixSignalManager) Start(gs shutdown.GSInterface) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, posixSignalManager.signals...)

	go func() {
		<-c
		signal.Stop(c)

		gs.StartShutdown(posixSignalManager)
	}()

	return nil
}

func (posixSignalManager *PosixSignalManager) ShutdownStart() error {
	return nil
}

// ShutdownFinish 不退出进程，由调用方在 Done 之后自行返回。
func (posixSignalManager *PosixSignalManager) ShutdownFinish() error {
	return nil
}
