package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avdeenkov/linguatrack/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var debug bool

	rootCommand := &cobra.Command{
		Use:          "linguatrack",
		Short:        "Tools for the learning progress service",
		SilenceUsage: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file")
	rootCommand.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging regardless of env")

	loadConfig := func() (*config.Config, error) {
		_ = godotenv.Load()
		loader, err := config.NewConfigLoader(configFile)
		if err != nil {
			return nil, err
		}
		cfg, err := loader.Load()
		if err != nil {
			return nil, err
		}
		if debug {
			cfg.Env = "development"
		}
		return cfg, nil
	}

	rootCommand.AddCommand(
		newMigrateCommand(loadConfig),
		newStatsCommand(loadConfig),
		newDueCommand(loadConfig),
		newCheckStreakCommand(loadConfig),
		newLeaderboardCommand(loadConfig),
		newRecalculateStreaksCommand(loadConfig),
		newExportCommand(loadConfig),
	)
	return rootCommand
}
