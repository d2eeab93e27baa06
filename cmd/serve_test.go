package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerStateClaimAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "server.json")

	_, err := loadServerState(path)
	assert.ErrorIs(t, err, errNoServer)

	own := serverState{PID: os.Getpid(), Addr: "127.0.0.1:9999", StartedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, claimServerState(path, own))

	got, err := loadServerState(path)
	require.NoError(t, err)
	assert.Equal(t, own, got)

	// The same process may rewrite its own state, nobody else may take it.
	require.NoError(t, claimServerState(path, own))
	other := own
	other.PID = own.PID + 1
	assert.ErrorContains(t, claimServerState(path, other), "already running")
}

func TestServerStateStaleFileIsRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pid":0,"addr":"x"}`), 0o600))

	_, err := loadServerState(path)
	assert.ErrorIs(t, err, errNoServer)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestServerStateMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte("nope\n"), 0o600))

	_, err := loadServerState(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errNoServer)
	assert.Error(t, claimServerState(path, serverState{PID: os.Getpid()}))
}

func TestChildArgsCarryScenarioFlags(t *testing.T) {
	require.NoError(t, serveCmd.ParseFlags([]string{"--detach", "-g", "0.5", "--addr", ":9000"}))

	args := childArgs(serveCmd, ":9000")
	assert.Equal(t, []string{"serve", "--child", "--addr", ":9000"}, args[:4])
	assert.Contains(t, args, "--growth=0.5")
	assert.NotContains(t, args, "--detach=true")
	assert.NotContains(t, args, "--addr=:9000")
}
