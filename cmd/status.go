package cmd

import (
	"context"
	"fmt"

	"shortage-tracker/core/database"
	inventoryModels "shortage-tracker/feature/inventory/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd checks the database schema and object storage reachability.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check database schema and storage connectivity",
	Long: `Status verifies that the inventory and users tables carry the expected
columns and that the configured object storage bucket is reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		env, err := newCliEnv()
		if err != nil {
			return err
		}
		l := env.logger

		expected := map[string][]string{
			inventoryModels.Record{}.TableName(): {
				"id", "msn", "pnl", "part_number", "quantity",
				"urgency", "department", "manufacture_date",
				"note", "type", "created_by", "created_at", "updated_at",
			},
			"users": {
				"id", "username", "password_hash", "role", "created_at", "updated_at",
			},
		}

		healthy := true
		for table, columns := range expected {
			missing, err := database.MissingColumns(env.db, table, columns)
			if err != nil {
				return fmt.Errorf("failed to inspect table %q: %w", table, err)
			}
			if len(missing) > 0 {
				healthy = false
				l.Warn("Table is missing columns",
					zap.String("table", table),
					zap.Strings("missing", missing),
				)
			} else {
				l.Info("Table schema OK", zap.String("table", table))
			}
		}

		client, err := env.storageClient()
		if err != nil {
			l.Warn("Object storage unreachable", zap.Error(err))
		} else {
			exists, err := client.BucketExists(ctx, env.cfg.Storage.Bucket)
			switch {
			case err != nil:
				l.Warn("Bucket check failed", zap.Error(err))
			case exists:
				l.Info("Bucket reachable", zap.String("bucket", env.cfg.Storage.Bucket))
			default:
				healthy = false
				l.Warn("Bucket does not exist", zap.String("bucket", env.cfg.Storage.Bucket))
			}
		}

		if !healthy {
			return fmt.Errorf("status check found problems")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
