package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/cliflag"
)

type serverOptions struct {
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	Password string `mapstructure:"password"`
}

type testOptions struct {
	Server    *serverOptions `mapstructure:"server"`
	completed bool
}

func newTestOptions() *testOptions {
	return &testOptions{Server: &serverOptions{Port: 8080, Name: "default"}}
}

func (o *testOptions) Flags() (fss cliflag.NamedFlagSets) {
	fs := fss.FlagSet("server")
	fs.IntVar(&o.Server.Port, "server.port", o.Server.Port, "port")
	fs.StringVar(&o.Server.Name, "server.name", o.Server.Name, "name")
	fs.StringVar(&o.Server.Password, "server.password", o.Server.Password, "password")

	return fss
}

func (o *testOptions) Validate() []error {
	if o.Server.Port <= 0 {
		return []error{fmt.Errorf("invalid port %d", o.Server.Port)}
	}

	return nil
}

func (o *testOptions) Complete() error {
	o.completed = true
	return nil
}

func execute(t *testing.T, opts *testOptions, args []string, extra ...Option) (*testOptions, string, error) {
	t.Helper()

	var got *testOptions
	appOpts := append([]Option{
		WithOptions(opts),
		WithDefaultValidArgs(),
		WithRunFunc(func(basename string) error {
			assert.Equal(t, "user-test", basename)
			got = opts
			return nil
		}),
	}, extra...)

	a := NewApp("user test", "user-test", appOpts...)
	var out bytes.Buffer
	a.Command().SetOut(&out)
	a.Command().SetArgs(args)

	err := a.Command().Execute()

	return got, out.String(), err
}

func TestFlagsOverrideDefaults(t *testing.T) {
	got, _, err := execute(t, newTestOptions(), []string{"--server.port=9000"}, WithSilence())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 9000, got.Server.Port)
	assert.Equal(t, "default", got.Server.Name)
	assert.True(t, got.completed)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("USER_TEST_SERVER_NAME", "from-env")

	got, _, err := execute(t, newTestOptions(), nil, WithSilence())
	require.NoError(t, err)
	assert.Equal(t, "from-env", got.Server.Name)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user-test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\n  name: from-file\n  password: secret\n"), 0o600))

	got, out, err := execute(t, newTestOptions(), []string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, 7000, got.Server.Port)
	assert.Equal(t, "from-file", got.Server.Name)
	assert.Contains(t, out, "server.name:")
	assert.NotContains(t, out, "secret")
}

func TestFlagBeatsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user-test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600))

	got, _, err := execute(t, newTestOptions(), []string{"-c", path, "--server.port=7100"}, WithSilence())
	require.NoError(t, err)
	assert.Equal(t, 7100, got.Server.Port)
}

func TestMissingConfigFile(t *testing.T) {
	got, _, err := execute(t, newTestOptions(), []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, WithSilence())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestValidationErrors(t *testing.T) {
	got, _, err := execute(t, newTestOptions(), []string{"--server.port=0"}, WithSilence())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 0")
	assert.Nil(t, got)
}

func TestPositionalArgsRejected(t *testing.T) {
	_, _, err := execute(t, newTestOptions(), []string{"extra"}, WithSilence())
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	got, out, err := execute(t, newTestOptions(), []string{"--version"})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, out, Version)
}

func TestHelpListsSections(t *testing.T) {
	_, out, err := execute(t, newTestOptions(), []string{"--help"})
	require.NoError(t, err)

	assert.Contains(t, out, "Server flags:")
	assert.Contains(t, out, "Global flags:")
	assert.Contains(t, out, "--server.port")
	assert.Contains(t, out, "--config")
}
