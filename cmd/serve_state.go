package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// serverState is written by a running server and read by serve status/stop.
// It is the only runtime file; a server owns it from start to shutdown.
type serverState struct {
	PID       int       `json:"pid"`
	Addr      string    `json:"addr"`
	StartedAt time.Time `json:"started_at"`
	LogFile   string    `json:"log_file,omitempty"`
}

// errNoServer means no live server holds the state file.
var errNoServer = errors.New("no running server")

// alive reports whether the recorded process still exists.
func (st serverState) alive() bool {
	if st.PID <= 0 {
		return false
	}
	proc, err := os.FindProcess(st.PID)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}

// loadServerState returns the state of a live server. A missing file or one
// left behind by a dead process yields errNoServer; the stale file is removed.
func loadServerState(path string) (serverState, error) {
	var st serverState
	//nolint:gosec // state path is configured by the local user
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return st, errNoServer
	}
	if err != nil {
		return st, fmt.Errorf("read server state: %w", err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("parse server state %s: %w", path, err)
	}
	if !st.alive() {
		_ = os.Remove(path)
		return st, errNoServer
	}
	return st, nil
}

// claimServerState records st at path unless another live server holds it.
// The file is written to a temp name and renamed so readers never see a
// partial document.
func claimServerState(path string, st serverState) error {
	switch cur, err := loadServerState(path); {
	case err == nil && cur.PID != st.PID:
		return fmt.Errorf("server already running (pid %d on %s)", cur.PID, cur.Addr)
	case err != nil && !errors.Is(err, errNoServer):
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write server state: %w", err)
	}
	return os.Rename(tmp, path)
}

// childArgs rebuilds the command line for a detached server from the flags
// the user set, so the child computes the same scenario.
func childArgs(cmd *cobra.Command, addr string) []string {
	args := []string{"serve", "--child", "--addr", addr}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "detach", "child", "addr":
			return
		}
		args = append(args, "--"+f.Name+"="+f.Value.String())
	})
	return args
}
