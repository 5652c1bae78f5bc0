package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/amankeys/internal/logging"
	"github.com/Aman-CERP/amankeys/internal/mcp"
)

func newServeCmd() *cobra.Command {
	var transport string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol server on stdio.

Tools:
  extract_keywords  keywords and key phrases of a text
  tokenize          tokens, tags, lemmas and stems of a text

Logs are written to ~/.amankeys/logs/server.log; stdout carries only
JSON-RPC messages.`,
		Example: `  # Claude Desktop / MCP client configuration
  {"command": "amankeys", "args": ["serve"]}`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, transport)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "Transport (stdio); defaults to server.transport from config")

	return cmd
}

func runServe(ctx context.Context, transport string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if transport == "" {
		transport = cfg.Server.Transport
	}

	cleanup, err := logging.SetupServeMode(cfg.Server.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	idx, err := cfg.BuildIndexator(ctx, slog.Default())
	if err != nil {
		slog.Error("failed to build indexator", slog.Any("error", err))
		return err
	}

	server, err := mcp.NewServer(idx, cfg)
	if err != nil {
		return err
	}
	server.SetLogger(slog.Default())

	if err := server.Serve(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
