package main

import (
	migration "Matrafl-Backend/cmd/database/migrate"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()
		return migration.Migrate(db, log)
	},
}
