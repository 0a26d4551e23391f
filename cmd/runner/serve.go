package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tap-runner/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeConfig   string
	flagServeDiff     string
	flagServeTickRate int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own run. Best scores are kept per SSH user,
and every finished run goes into the shared history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tap-runner/host_key

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key
  runner serve --db ./runner.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom runner config YAML")
	serveCmd.Flags().StringVar(&flagServeDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().IntVar(&flagServeTickRate, "fps", 30, "Tick rate per session")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "runner-ssh")
	if err != nil {
		return err
	}

	runnerCfg, _, err := loadConfig(flagServeConfig, flagServeDiff)
	if err != nil {
		return err
	}

	store, _ := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runner:      runnerCfg,
		TickRate:    flagServeTickRate,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting runner SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
