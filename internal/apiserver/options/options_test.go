package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()

	assert.Empty(t, o.Validate())
	assert.Equal(t, "fast-api-project", o.App.Name)
	assert.False(t, o.App.Debug)
	assert.Equal(t, "test_db", o.Database.Database)
	assert.Equal(t, DefaultMiddlewares, o.GenericServerRunOptions.Middlewares)
}

func TestFlagsGroups(t *testing.T) {
	fss := NewOptions().Flags()

	assert.Equal(t, []string{"app", "generic", "insecure serving", "database", "features", "logs"}, fss.Order)
	assert.NotNil(t, fss.FlagSet("app").Lookup("app.debug"))
	assert.NotNil(t, fss.FlagSet("database").Lookup("db.driver"))
}

func TestCompleteDebug(t *testing.T) {
	o := NewOptions()
	o.App.Debug = true

	require.NoError(t, o.Complete())
	require.NoError(t, o.Complete())

	assert.Equal(t, "debug", o.GenericServerRunOptions.Mode)
	count := 0
	for _, m := range o.GenericServerRunOptions.Middlewares {
		if m == "dump" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCompleteRelease(t *testing.T) {
	o := NewOptions()
	require.NoError(t, o.Complete())

	assert.Equal(t, "release", o.GenericServerRunOptions.Mode)
	assert.NotContains(t, o.GenericServerRunOptions.Middlewares, "dump")
}

func TestValidateAggregates(t *testing.T) {
	o := NewOptions()
	o.App.Name = ""
	o.InsecureServing.BindPort = -1
	o.Database.Driver = "oracle"

	assert.Len(t, o.Validate(), 3)
}

func TestStringHidesPassword(t *testing.T) {
	o := NewOptions()
	o.Database.Password = "secret"

	s := o.String()
	assert.Contains(t, s, `"name":"fast-api-project"`)
	assert.NotContains(t, s, "secret")
}
