package shutdown

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualManager struct {
	started  bool
	finished int
}

func (m *manualManager) GetName() string { return "manual" }

func (m *manualManager) Start(GSInterface) error {
	m.started = true
	return nil
}

func (m *manualManager) ShutdownStart() error { return nil }

func (m *manualManager) ShutdownFinish() error {
	m.finished++
	return errors.New("finish failed")
}

func TestCallbacksRunInOrder(t *testing.T) {
	gs := New()
	sm := &manualManager{}
	gs.AddShutdownManager(sm)
	require.NoError(t, gs.Start())
	assert.True(t, sm.started)

	var order []string
	gs.AddShutdownCallback(ShutdownFunc(func(name string) error {
		assert.Equal(t, "manual", name)
		order = append(order, "server")
		return nil
	}))
	gs.AddShutdownCallback(ShutdownFunc(func(string) error {
		order = append(order, "store")
		return errors.New("close store failed")
	}))

	var errs []error
	gs.SetErrorHandler(ErrorFunc(func(err error) {
		errs = append(errs, err)
	}))

	gs.StartShutdown(sm)

	assert.Equal(t, []string{"server", "store"}, order)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "close store failed")
	assert.EqualError(t, errs[1], "finish failed")

	select {
	case <-gs.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestStartShutdownOnce(t *testing.T) {
	gs := New()
	sm := &manualManager{}

	calls := 0
	gs.AddShutdownCallback(ShutdownFunc(func(string) error {
		calls++
		return nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gs.StartShutdown(sm)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, sm.finished)
}
