package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dheerghayush/naturals/internal/app"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/pkg/config"
	"github.com/dheerghayush/naturals/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Maintenance commands for the naturals storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(seedCmd())
	root.AddCommand(createAdminCmd())
	root.AddCommand(reindexCmd())
	return root
}

// session holds what every command needs: config, a logger-carrying
// context and an open store.
type session struct {
	cfg   config.Config
	ctx   context.Context
	store service.Store
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName, "cmd", cmd.Name())
	slog.SetDefault(logger)
	ctx := logging.IntoContext(cmd.Context(), logger)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	store, err := app.OpenStore(openCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &session{cfg: cfg, ctx: ctx, store: store}, nil
}

func (s *session) close() {
	if err := s.store.Close(context.Background()); err != nil {
		logging.FromContext(s.ctx).Error("store_close_error", "error", err)
	}
}
