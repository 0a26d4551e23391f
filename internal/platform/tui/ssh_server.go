package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/games/runner"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tap-runner/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Runner is the tuning every session plays with.
	Runner config.RunnerConfig

	// TickRate is the frame rate requested per session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Runner:      config.DefaultRunnerConfig(),
		TickRate:    30,
	}
}

// SSHServer wraps a Wish SSH server that gives every connection its own run.
// Sessions share the store; each user's best score lives under its own key.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	kv     storage.KV
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// best scores live in memory for the life of the server.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "runner-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}
	if store != nil {
		srv.kv = store
	} else {
		srv.kv = storage.NewMemoryKV()
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tap-runner", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionOptions builds the model options for one user.
func (s *SSHServer) sessionOptions(user string, width, height int) Options {
	opts := Options{
		Config: s.config.Runner,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		KV:      s.kv,
		BestKey: runner.UserBestKey(user),
		Logger:  s.logger.With("user", user),
	}
	if s.store != nil {
		opts.Runs = s.store
	}
	return opts
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewModel(s.sessionOptions(sshSession.User(), pty.Window.Width, pty.Window.Height))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server. The store belongs to the caller.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
