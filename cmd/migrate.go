package cmd

import (
	"fmt"

	"github.com/CYSTCloud/TP/log"
	"github.com/CYSTCloud/TP/models"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := models.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.L().Info("database schema is up to date")
		return nil
	},
}
