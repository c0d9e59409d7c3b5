package main

import (
	"log/slog"
	"os"

	"github.com/Dosada05/volei-torneio/config"
	"github.com/spf13/cobra"
)

func main() {
	// Настройка логгера, уровень уточняется после загрузки конфигурации
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var cfg *config.Config
	root := &cobra.Command{
		Use:           "volei",
		Short:         "Beach volleyball tournament manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			level.Set(loaded.LogLevel)
			cfg = loaded
			return nil
		},
	}

	getConfig := func() *config.Config { return cfg }
	root.AddCommand(serveCmd(getConfig, logger))
	root.AddCommand(advanceCmd(getConfig, logger))
	root.AddCommand(standingsCmd(getConfig, logger))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
