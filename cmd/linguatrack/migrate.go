package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/avdeenkov/linguatrack/internal/config"
	"github.com/avdeenkov/linguatrack/internal/database"
)

func newMigrateCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(db); err != nil {
				return err
			}
			color.Green("migrations applied")
			return nil
		},
	}
}
