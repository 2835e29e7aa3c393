package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableBooking/internal/config"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
)

const defaultConfigPath = "config.toml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		metricsAddr string
	)

	root := &cobra.Command{
		Use:           "tablebooking",
		Short:         "Restaurant table booking: records API and availability engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config.toml")
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "listen address for engine metrics (availability, book)")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newAvailabilityCmd(&configPath, &metricsAddr))
	root.AddCommand(newBookCmd(&configPath, &metricsAddr))

	return root
}

// bootstrap загружает конфигурацию и создает логгер
func bootstrap(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", configPath)

	return cfg, log, nil
}
