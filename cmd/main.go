package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/talentdesk/pkg/config"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "talentdesk",
		Short:         "Recruiting dashboard API and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.AddCommand(
		newServeCmd(),
		newFilterCmd(),
		newExportCmd(),
		newTokenCmd(),
		newMigrateCmd(),
	)
	return cmd
}

// loadConfig lee la configuración y ajusta el logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logx.SetLevel(logx.ParseLevel(cfg.Server.LogLevel))
	if cfg.IsProd() {
		logx.UseJSON()
	}
	return cfg, nil
}
