package cmd

import (
	"cms-api/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := config.InitDB(cfg.Database)
		if err != nil {
			return err
		}
		defer config.CloseDB(db)

		if err := config.AutoMigrate(db); err != nil {
			return err
		}
		log.Info("schema migrated", "driver", cfg.Database.Driver)
		return nil
	},
}
