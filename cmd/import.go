package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"shortage-tracker/core/storage"
	"shortage-tracker/feature/inventory"
	"shortage-tracker/feature/inventory/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importObject     string
	importDepartment string
	importPolicy     string
	importClean      bool
)

// importCmd reconciles a CSV batch into a department.
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a CSV batch of missing parts into a department",
	Long: `Import reconciles a CSV export of missing parts into one department.

Rows are matched against the existing records by the (MSN, PNL, part number)
key. Duplicates are skipped or replaced depending on --policy, and --clean
wipes the department before inserting.

Examples:
  # Import a local file, skipping rows already present
  import shortages.csv --department PANNELLI

  # Replace matching records instead of skipping
  import shortages.csv --department PANNELLI --policy replace

  # Wipe the department first, then pull the batch from object storage
  import --object batches/week-35.csv --department FINALE --clean`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importObject, "object", "", "Read the CSV from this object in the configured bucket")
	importCmd.Flags().StringVar(&importDepartment, "department", "", "Target department (required)")
	importCmd.Flags().StringVar(&importPolicy, "policy", string(reconcile.PolicySkip), "Duplicate policy: skip or replace")
	importCmd.Flags().BoolVar(&importClean, "clean", false, "Wipe the target department before inserting")
	_ = importCmd.MarkFlagRequired("department")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 && importObject == "" {
		return fmt.Errorf("either a file argument or --object is required")
	}

	policy := importPolicy
	switch policy {
	case reconcile.PolicySkip, reconcile.PolicyReplace:
	default:
		return fmt.Errorf("unknown duplicate policy %q", importPolicy)
	}

	env, err := newCliEnv()
	if err != nil {
		return err
	}
	l := env.logger

	var client storage.Client
	var bucket string
	if importObject != "" {
		client, err = env.storageClient()
		if err != nil {
			return err
		}
		bucket = env.cfg.Storage.Bucket
	}

	svc := inventory.NewService(inventory.NewStore(env.db), client, bucket, l, 0)

	var rows []reconcile.Row
	if importObject != "" {
		rows, err = svc.FetchImportRows(ctx, importObject)
		if err != nil {
			return fmt.Errorf("failed to fetch batch %q: %w", importObject, err)
		}
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", args[0], err)
		}
		defer f.Close()

		rows, err = inventory.ParseCSVRows(f)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", args[0], err)
		}
	}

	l.Info("Importing batch",
		zap.String("department", importDepartment),
		zap.String("policy", policy),
		zap.Bool("clean", importClean),
		zap.Int("rows", len(rows)),
	)

	report, err := svc.Import(ctx, rows, importDepartment, reconcile.ImportOptions{
		DuplicatePolicy: policy,
		CleanDepartment: importClean,
	})
	if errors.Is(err, reconcile.ErrNothingToImport) {
		l.Info("Nothing to import: every row was already present or malformed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	l.Info("Import finished",
		zap.Int("inserted", report.Inserted),
		zap.Int("deleted", report.Deleted),
		zap.Bool("cleaned_department", report.CleanedDepartment),
	)
	return nil
}
