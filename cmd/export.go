package cmd

import (
	"fmt"

	"zoo-manager/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON snapshot of every collection to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := snapshot.NewService(rt.db, rt.store, rt.cfg.Storage.Bucket, rt.logger)
		manifest, err := svc.Create(cmd.Context())
		if err != nil {
			return err
		}

		for _, obj := range manifest.Objects {
			rt.logger.Info("Exported collection",
				zap.String("collection", obj.Collection),
				zap.Int("records", obj.Records),
				zap.String("key", obj.Key))
		}
		fmt.Println(manifest.ID)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
