package cliflag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestFlagSetKeepsOrder(t *testing.T) {
	var nfs NamedFlagSets
	nfs.FlagSet("server").String("server.mode", "release", "mode")
	nfs.FlagSet("db").String("db.driver", "sqlite", "driver")
	nfs.FlagSet("server").Bool("server.healthz", true, "healthz")

	assert.Equal(t, []string{"server", "db"}, nfs.Order)
	assert.NotNil(t, nfs.FlagSets["server"].Lookup("server.healthz"))
}

func TestPrintSections(t *testing.T) {
	var nfs NamedFlagSets
	nfs.FlagSet("server").String("server.mode", "release", "server mode")
	nfs.FlagSet("empty")
	nfs.FlagSet("db").String("db.driver", "sqlite", "database driver")

	for _, cols := range []int{0, 80} {
		var buf bytes.Buffer
		PrintSections(&buf, nfs, cols)
		out := buf.String()

		assert.Contains(t, out, "Server flags:")
		assert.Contains(t, out, "Db flags:")
		assert.NotContains(t, out, "Empty flags:")
		assert.NotContains(t, out, "zzz")
		assert.Less(t, strings.Index(out, "--server.mode"), strings.Index(out, "--db.driver"))
	}
}

func TestWordSepNormalizeFunc(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(WordSepNormalizeFunc)
	port := fs.Int("bind-port", 0, "")

	assert.NoError(t, fs.Parse([]string{"--bind_port=8000"}))
	assert.Equal(t, 8000, *port)
}
