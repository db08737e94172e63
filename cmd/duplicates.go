package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"shortage-tracker/core/storage"
	"shortage-tracker/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadDuplicates bool
	purgeDuplicates  bool
	yesConfirm       bool
)

// duplicatesCmd reports parts missing in two or more departments.
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Report parts missing in several departments at once",
	Long: `Duplicates consolidates records sharing the same (MSN, PNL, part number)
key across departments and reports every key held by two or more of them.

Examples:
  # Print the report
  duplicates

  # Also archive the report as JSON in object storage
  duplicates --upload

  # Delete every record belonging to a cross-department group
  duplicates --purge --yes`,
	RunE: runDuplicates,
}

func init() {
	duplicatesCmd.Flags().BoolVar(&uploadDuplicates, "upload", false, "Archive the report in the configured bucket")
	duplicatesCmd.Flags().BoolVar(&purgeDuplicates, "purge", false, "Delete every record in a cross-department group")
	duplicatesCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(duplicatesCmd)
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := newCliEnv()
	if err != nil {
		return err
	}
	l := env.logger

	var client storage.Client
	var bucket string
	if uploadDuplicates {
		client, err = env.storageClient()
		if err != nil {
			return err
		}
		bucket = env.cfg.Storage.Bucket
	}

	svc := inventory.NewService(inventory.NewStore(env.db), client, bucket, l, 0)

	groups, err := svc.Duplicates(ctx)
	if err != nil {
		return fmt.Errorf("failed to consolidate duplicates: %w", err)
	}

	l.Info("Cross-department duplicates", zap.Int("groups", len(groups)))
	for _, g := range groups {
		l.Info("Duplicate group",
			zap.String("msn", g.MSN),
			zap.String("pnl", g.PNL),
			zap.String("part_number", g.PartNumber),
			zap.Strings("departments", g.Departments),
			zap.Int("total_quantity", g.TotalQuantity),
		)
	}

	if uploadDuplicates {
		objectName, err := svc.UploadDuplicatesReport(ctx)
		if err != nil {
			return fmt.Errorf("failed to upload report: %w", err)
		}
		l.Info("Report archived", zap.String("object", objectName))
	}

	if !purgeDuplicates {
		return nil
	}
	if len(groups) == 0 {
		l.Info("Nothing to purge.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	removed, err := svc.PurgeDuplicates(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge duplicates: %w", err)
	}
	l.Info("Purged duplicate records", zap.Int("removed", removed))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
