package cmd

import (
	"log"

	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the task table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := config.OpenDatabase(cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		log.Printf("database %s migrated", cfg.DatabaseDSN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
