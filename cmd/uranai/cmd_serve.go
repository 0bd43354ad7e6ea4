package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sv "github.com/HendryAvila/uranai/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Graceful shutdown on interrupt.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	rt, err := sv.NewRuntime(ctx, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("creating runtime: %w", err)
	}
	defer rt.Close()

	if err := rt.StartWatcher(ctx); err != nil {
		// The server still works; the dataset just will not hot-reload.
		a.logger.Warn("dataset watcher disabled", zap.Error(err))
	}

	s := sv.New(rt)
	a.logger.Info("serving MCP on stdio", zap.String("version", sv.Version), zap.String("backend", a.cfg.Dataset.Backend))

	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(zap.NewStdLog(a.logger))
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
