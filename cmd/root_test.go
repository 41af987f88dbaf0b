package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team6/drone/internal/buildinfo"
	"github.com/team6/drone/internal/conf"
)

func TestVersionSkipsConfigLoad(t *testing.T) {
	settings := &conf.Settings{}
	info := &buildinfo.Context{Version: "v0.3.0", BuildDate: "2024-05-01", SystemID: "node-7"}

	root := RootCommand(settings, info)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "drone v0.3.0 (built 2024-05-01)\nsystem id: node-7\n", out.String())
	assert.Empty(t, settings.Version, "settings stay untouched")
}

func TestSubcommandsAndFlags(t *testing.T) {
	root := RootCommand(&conf.Settings{}, &buildinfo.Context{})

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"realtime", "snapshot", "version"})

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().ShorthandLookup("d"))

	snap, _, err := root.Find([]string{"snapshot"})
	require.NoError(t, err)
	timeout, err := snap.Flags().GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, timeout)
	out, err := snap.Flags().GetString("out")
	require.NoError(t, err)
	assert.Equal(t, "snapshots", out)

	rt, _, err := root.Find([]string{"realtime"})
	require.NoError(t, err)
	for _, name := range []string{"source", "device", "replaypath", "port", "mqtt"} {
		assert.NotNil(t, rt.Flags().Lookup(name), name)
	}
}
