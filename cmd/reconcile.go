package cmd

import (
	"context"
	"fmt"

	"catalog-reconciler/core/config"
	"catalog-reconciler/core/database"
	"catalog-reconciler/core/logger"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/catalog/reconcile"
	"catalog-reconciler/feature/catalog/snapshot"
	"catalog-reconciler/feature/catalog/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	snapshotPath string
	snapshotObj  string
	tableName    string
)

// reconcileCmd runs one full reconciliation pass.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the product catalog against a snapshot",
	Long: `Run one reconciliation pass: load the snapshot, apply per-row
inserts and updates, then execute the batch phase that removes every
persisted record the snapshot no longer contains.

The snapshot source comes from configuration (SNAPSHOT_SOURCE=file|storage)
and can be overridden per invocation.

Examples:
  # Reconcile from a local snapshot file
  catalog-reconciler reconcile --snapshot ./catalog.csv

  # Reconcile from the configured storage bucket
  catalog-reconciler reconcile --object snapshots/catalog.csv

  # Target a different catalog table
  catalog-reconciler reconcile --table products_staging`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Local snapshot file (overrides config, forces file source)")
	reconcileCmd.Flags().StringVar(&snapshotObj, "object", "", "Snapshot object in the bucket (overrides config, forces storage source)")
	reconcileCmd.Flags().StringVar(&tableName, "table", "", "Catalog table to reconcile (overrides config)")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyReconcileFlags(cfg)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("starting catalog reconciliation",
		zap.String("table", cfg.Snapshot.Table),
		zap.String("source", cfg.Snapshot.Source),
	)

	// A store that is unreachable at startup aborts the run before any row
	// is processed.
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	catalog := store.NewCatalog(db, cfg.Snapshot.Table)
	engine := reconcile.NewEngine(catalog, l)
	driver := reconcile.NewDriver(engine, source, cfg.Snapshot.Delim(), l)

	metrics, err := driver.Run(ctx)
	if err != nil {
		return err
	}

	l.Info("reconciliation succeeded",
		zap.Int64("added", metrics.Added),
		zap.Int64("updated", metrics.Updated),
		zap.Int64("deleted", metrics.Deleted),
	)
	_ = l.Sync()
	return nil
}

// applyReconcileFlags lets flags override the configured snapshot settings.
func applyReconcileFlags(cfg *config.Config) {
	if snapshotPath != "" {
		cfg.Snapshot.Source = "file"
		cfg.Snapshot.Path = snapshotPath
	}
	if snapshotObj != "" {
		cfg.Snapshot.Source = "storage"
		cfg.Snapshot.Object = snapshotObj
	}
	if tableName != "" {
		cfg.Snapshot.Table = tableName
	}
}

// buildSource resolves the configured snapshot source.
func buildSource(cfg *config.Config) (snapshot.Source, error) {
	switch cfg.Snapshot.Source {
	case "storage":
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		return snapshot.ObjectSource{
			Client: client,
			Bucket: cfg.Storage.Bucket,
			Object: cfg.Snapshot.Object,
		}, nil
	case "file":
		return snapshot.FileSource{Path: cfg.Snapshot.Path}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot source %q", cfg.Snapshot.Source)
	}
}
