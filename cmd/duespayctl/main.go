package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/duespay/internal/pkg/config"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/spf13/cobra"
)

var Version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "duespayctl",
		Short:         "Operator tooling for the DuesPay payments core",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/payments.env", "Env file read when APP_ENV is local")

	rootCmd.AddCommand(payoutCmd())
	rootCmd.AddCommand(payoutsCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads configuration and installs the global logger
func loadConfig() (*models.Config, *logger.AppLogger, error) {
	configs := config.InitConfig(configPath)
	appLogger, err := logger.InitAppLoggerFromConfig(configs, "duespayctl")
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	return configs, appLogger, nil
}
