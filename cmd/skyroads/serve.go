package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyroads/internal/games/skyroads"
	"github.com/vovakirdan/tui-skyroads/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagShutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Skyroads SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the main menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  skyroads serve                           # Listen on :23234 with auto-generated key
  skyroads serve --ssh :2222               # Listen on port 2222
  skyroads serve --host-key ./my_host_key  # Use specific host key
  skyroads serve --db ./scores.db          # Use specific database

Players connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagShutdownTimeout, "shutdown-timeout", 10*time.Second, "How long to wait for open sessions on shutdown")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:         flagSSHAddr,
		HostKeyPath:     flagHostKey,
		DBPath:          flagDBPath,
		IdleTimeout:     time.Duration(flagIdleTimeout) * time.Minute,
		ShutdownTimeout: flagShutdownTimeout,
		GameID:          skyroads.GameID,
		TickRate:        flagFPS,
		Logger:          appLogger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Skyroads SSH server on %s, ctrl+c to stop\n", server.Addr())
	fmt.Printf("Connect with: ssh -p %s localhost\n", port(server.Addr()))
	return server.Serve(ctx)
}

// port extracts the port of a host:port address, falling back to the input.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
