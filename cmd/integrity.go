package cmd

import (
	"context"
	"errors"

	"zoo-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Report dangling references and schema drift",
	Long:  `Lists employees and events whose animal no longer exists, compares the tables with the models and checks the bucket layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// referencesCmd represents the integrity references command
var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "List dangling animal references",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Compare the database schema with the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(referencesCmd, schemaCmd, structureCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
}

func runIntegrityChecks(ctx context.Context, runReferences, runSchema, runStructure bool) error {
	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewService(rt.db, schemaModels(), rt.store, rt.cfg.Storage.Bucket, logg)

	if runReferences {
		logg.Info("Checking animal references...")
		report, err := svc.CheckReferences(ctx)
		if err != nil {
			return err
		}
		if report.Matched {
			logg.Info("All animal references resolve.", zap.Int64("checked", report.Checked))
		} else {
			for _, d := range report.Dangling {
				logg.Warn("Dangling reference",
					zap.String("collection", d.Collection),
					zap.Int64("id", d.ID),
					zap.String("field", d.Field),
					zap.Int64("animal", d.Animal))
			}
		}
	}

	if runSchema {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return err
		}
		if report.Matched {
			logg.Info("Database schema matches the models.", zap.String("driver", report.Driver))
		} else {
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runStructure {
		missing, err := svc.CheckStructure(ctx)
		if errors.Is(err, integrity.ErrStorageDisabled) {
			logg.Info("Object storage disabled, skipping structure check.")
			return nil
		}
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
			return nil
		}
		logg.Warn("Missing folders detected", zap.Strings("missing", missing))
		if !fixFlag {
			logg.Info("Run with --fix to create missing folders.")
			return nil
		}
		if err := svc.FixStructure(ctx, missing); err != nil {
			return err
		}
		logg.Info("Structure fixed successfully.")
	}

	return nil
}
