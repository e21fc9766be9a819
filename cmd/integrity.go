package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"order-items/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the item tables and the snapshot bucket",
	Long: `Verifies that both item tables carry the expected column set and types,
and that the snapshot bucket exists when export is enabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		return runIntegrityChecks(cmd.Context(), rt)
	},
}

func runIntegrityChecks(ctx context.Context, rt *runtime) error {
	if ctx == nil {
		ctx = context.Background()
	}
	l := rt.logger

	report, err := checks.CheckSchema(rt.db, rt.cfg.Database.TablePrefix)
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	if rt.client != nil {
		exists, err := checks.CheckBucket(ctx, rt.client, rt.cfg.Storage.Bucket)
		switch {
		case err != nil:
			l.Error("Storage check failed", zap.Error(err))
		case !exists && fixFlag:
			if err := checks.FixBucket(ctx, rt.client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, l); err != nil {
				return err
			}
		case !exists:
			l.Warn("Snapshot bucket is missing (use --fix to create it)", zap.String("bucket", rt.cfg.Storage.Bucket))
		default:
			l.Info("Snapshot bucket present", zap.String("bucket", rt.cfg.Storage.Bucket))
		}
	}

	if !report.Matched {
		return fmt.Errorf("item tables do not match the expected schema")
	}
	return nil
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the snapshot bucket if missing")
	RootCmd.AddCommand(integrityCmd)
}
