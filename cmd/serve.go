package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/server"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr      string
	flagServeDetach    bool
	flagServeStateFile string
	flagServeLogFile   string
	flagServeChild     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server process and API status",
	RunE:  runServeStatus,
}

var serveStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running server",
	RunE:  runServeStop,
}

func init() {
	defaultState := filepath.Join(config.StateDir(), "server.json")
	defaultLog := filepath.Join(config.StateDir(), "server.log")

	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.PersistentFlags().StringVar(&flagServeStateFile, "state-file", defaultState, "Runtime state file (pid, address)")
	serveCmd.PersistentFlags().StringVar(&flagServeLogFile, "log-file", defaultLog, "Log file path for detached mode")

	serveCmd.Flags().BoolVar(&flagServeDetach, "detach", false, "Run the server as a background process")
	serveCmd.Flags().BoolVar(&flagServeChild, "child", false, "Internal: mark detached child process")
	_ = serveCmd.Flags().MarkHidden("child")

	serveCmd.AddCommand(serveStatusCmd)
	serveCmd.AddCommand(serveStopCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagServeDetach && flagServeChild {
		return errors.New("invalid server launch mode")
	}

	in, err := loadInput(cmd)
	if err != nil {
		return err
	}
	addr := flagServeAddr
	if addr == "" {
		addr = in.cfg.Server.Addr
	}

	if flagServeDetach {
		return startServerDetached(cmd, addr)
	}

	st := serverState{PID: os.Getpid(), Addr: addr, StartedAt: time.Now()}
	if flagServeChild {
		st.LogFile = flagServeLogFile
	}
	if err := claimServerState(flagServeStateFile, st); err != nil {
		return err
	}
	defer func() { _ = os.Remove(flagServeStateFile) }()

	svc := server.New(server.Config{
		Addr:     addr,
		Scenario: in.scenario,
		Horizon:  in.bucket,
	})

	fmt.Printf("  kapital listening on http://%s\n", addr)
	fmt.Printf("  Try: curl 'http://%s/v1/projection?horizon=year'\n", addr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func startServerDetached(cmd *cobra.Command, addr string) error {
	st, err := loadServerState(flagServeStateFile)
	switch {
	case err == nil:
		return fmt.Errorf("server already running (pid %d on %s)", st.PID, st.Addr)
	case !errors.Is(err, errNoServer):
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(flagServeLogFile), 0o750); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // log path is configured by the local user
	logf, err := os.OpenFile(flagServeLogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logf.Close() }()

	child := exec.Command(exe, childArgs(cmd, addr)...) //nolint:gosec // re-executes this binary
	child.Stdout = logf
	child.Stderr = logf
	child.Env = os.Environ()

	if err := child.Start(); err != nil {
		return fmt.Errorf("start detached server: %w", err)
	}

	fmt.Printf("  Started server (pid %d)\n", child.Process.Pid)
	fmt.Printf("  API: http://%s/v1/status\n", addr)
	fmt.Printf("  Log: %s\n", flagServeLogFile)
	return nil
}

func runServeStatus(_ *cobra.Command, _ []string) error {
	st, err := loadServerState(flagServeStateFile)
	if errors.Is(err, errNoServer) {
		fmt.Println("  Server: not running")
		return nil
	}
	if err != nil {
		return err
	}

	addr := st.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}

	fmt.Printf("  Server PID: %d\n", st.PID)
	fmt.Printf("  Address: http://%s\n", addr)
	if st.LogFile != "" {
		fmt.Printf("  Log: %s\n", st.LogFile)
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status") //nolint:noctx // short status check
	if err != nil {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API status: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var api server.Status
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		fmt.Printf("  API status: malformed response (%v)\n", err)
		return nil
	}

	fmt.Printf("  Up since: %s\n", api.StartedAt.Local().Format(time.RFC3339))
	fmt.Printf("  Requests: %d\n", api.Requests)
	fmt.Printf("  Base horizon: %s\n", api.BaseHorizon)
	if api.LastError != "" {
		fmt.Printf("  Last error: %s\n", api.LastError)
	}
	return nil
}

func runServeStop(_ *cobra.Command, _ []string) error {
	st, err := loadServerState(flagServeStateFile)
	if errors.Is(err, errNoServer) {
		return errors.New("server is not running")
	}
	if err != nil {
		return err
	}

	proc, err := os.FindProcess(st.PID)
	if err != nil {
		return fmt.Errorf("find server process: %w", err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("signal server process: %w", err)
	}

	deadline := time.Now().Add(8 * time.Second)
	for time.Now().Before(deadline) {
		if !st.alive() {
			_ = os.Remove(flagServeStateFile)
			fmt.Printf("  Stopped server (pid %d)\n", st.PID)
			return nil
		}
		time.Sleep(150 * time.Millisecond)
	}
	return fmt.Errorf("server (pid %d) did not exit in time", st.PID)
}
