package cmd

import (
	"zoo-manager/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := database.Migrate(rt.db, schemaModels()...); err != nil {
			return err
		}
		rt.logger.Info("Database migrated", zap.Int("tables", len(schemaModels())))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
