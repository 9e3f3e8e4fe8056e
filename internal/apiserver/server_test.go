package apiserver

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/config"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/options"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store/fake"
	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
	genericapiserver "github.com/maxiaolu1981/cretem/usercrud/internal/pkg/server"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/shutdown"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/shutdown/shutdownmanagers/posixsignal"
)

func TestServerLifecycle(t *testing.T) {
	opts := options.NewOptions()
	opts.GenericServerRunOptions.Mode = "test"
	opts.FeatureOptions.EnableMetrics = false
	opts.InsecureServing.BindPort = 0
	opts.Database.Database = filepath.Join(t.TempDir(), "test_db")

	cfg, err := config.CreateConfigFromOptions(opts)
	require.NoError(t, err)

	s, err := createAPIServer(cfg)
	require.NoError(t, err)
	prepared := s.PrepareRun()

	errCh := make(chan error, 1)
	go func() {
		errCh <- prepared.Run()
	}()

	s.gs.StartShutdown(s.signalManager)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = s.factory.Users().List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, code.ErrStoreUnavailable))
}

type closeRecorder struct {
	store.Factory
	closed atomic.Bool
}

func (f *closeRecorder) Close() error {
	f.closed.Store(true)
	return f.Factory.Close()
}

func TestServerRunListenError(t *testing.T) {
	c := genericapiserver.NewConfig()
	c.Mode = gin.TestMode
	c.EnableMetrics = false
	c.InsecureServing.Address = "127.0.0.1:-1"
	genericServer, err := c.Complete().New()
	require.NoError(t, err)

	factory := &closeRecorder{Factory: fake.New()}
	s := newAPIServer(shutdown.New(), posixsignal.NewPosixSignalManager(), factory, genericServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.PrepareRun().Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not return")
	}

	select {
	case <-s.gs.Done():
	default:
		t.Fatal("shutdown callbacks not finished when Run returned")
	}
	assert.True(t, factory.closed.Load())
}
