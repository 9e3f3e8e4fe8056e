package posixsignal

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/shutdown"
)

func TestDefaultSignals(t *testing.T) {
	m := NewPosixSignalManager()
	assert.Len(t, m.signals, 2)
	assert.Equal(t, Name, m.GetName())
}

func TestSignalTriggersShutdown(t *testing.T) {
	gs := shutdown.New()
	gs.AddShutdownManager(NewPosixSignalManager(syscall.SIGUSR1))

	called := make(chan string, 1)
	gs.AddShutdownCallback(shutdown.ShutdownFunc(func(name string) error {
		called <- name
		return nil
	}))
	require.NoError(t, gs.Start())

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))

	select {
	case <-gs.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown not triggered")
	}
	assert.Equal(t, Name, <-called)
}
