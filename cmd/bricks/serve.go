package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
	"github.com/vovakirdan/tui-bricks/internal/platform/web"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var (
	flagSSHAddr     string
	flagWSAddr      string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over SSH and WebSocket",
	Long: `Start the SSH server and, with --ws, the WebSocket server.

Every SSH user gets their own save slot. WebSocket clients pick theirs
with the player query parameter (/ws?player=name). Scores from both are
stored in the same database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bricks/host_key

Examples:
  bricks serve                           # SSH on :23234
  bricks serve --ssh :2222 --ws :8080    # SSH and WebSocket
  bricks serve --ssh "" --ws :8080       # WebSocket only

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port), empty to disable")
	serveCmd.Flags().StringVar(&flagWSAddr, "ws", "", "WebSocket server address (host:port), empty to disable")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagWSAddr == "" {
		return errors.New("nothing to serve: both --ssh and --ws are empty")
	}

	logger := newLogger(os.Stderr, "bricks")
	game := loadConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var servers []func(context.Context) error

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.Game = game
		if flagFPS > 0 {
			cfg.TickRate = flagFPS
		}

		sshServer, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("ssh"))
		if err != nil {
			return fmt.Errorf("error creating SSH server: %w", err)
		}
		servers = append(servers, sshServer.ListenAndServe)
	}

	if flagWSAddr != "" {
		cfg := web.DefaultConfig()
		cfg.Address = flagWSAddr
		cfg.TickRate = flagFPS
		cfg.Seed = flagSeed
		cfg.Game = game

		servers = append(servers, web.NewServer(cfg, store, logger.WithPrefix("ws")).ListenAndServe)
	}

	// The first server to fail takes the others down with it.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, serve := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := serve(ctx); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				cancel()
			}
		}()
	}
	wg.Wait()

	logger.Info("server stopped")
	return firstErr
}
