package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dovefly/internal/assets"
	"github.com/vovakirdan/dovefly/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the DoveFly SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with its own barriers and score.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dovefly/host_key

Examples:
  dovefly serve                           # Listen on :23234 with auto-generated key
  dovefly serve --ssh :2222               # Listen on port 2222
  dovefly serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with .ascii art overriding the built-in set")
}

func runServe(cmd *cobra.Command, _ []string) error {
	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = cfg.SSH.Address
	serverCfg.HostKeyPath = cfg.SSH.HostKey
	serverCfg.Color = cfg.Display.Color
	serverCfg.Logger = newLogger(os.Stderr, "dovefly-ssh")

	// Validated in loadConfig
	serverCfg.IdleTimeout, _ = cfg.SSH.Timeout()

	if flagSSHAddr != "" {
		serverCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		serverCfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		if flagIdleTimeout < 0 {
			return fmt.Errorf("idle timeout %d is negative", flagIdleTimeout)
		}
		serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	lib, err := assets.Open(assetsDir())
	if err != nil {
		return err
	}
	serverCfg.Assets = lib

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting DoveFly SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
