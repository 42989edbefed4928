package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"catalog-reconciler/core/config"
	"catalog-reconciler/core/database"
	"catalog-reconciler/core/logger"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/catalog/fixture"
	"catalog-reconciler/feature/catalog/store"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the generate command
	genKeep   int
	genChange int
	genRemove int
	genAdd    int
	genOut    string
	genSeed   bool
	genUpload bool
)

// generateCmd produces a synthetic snapshot plus a matching initial store
// state for testing the reconciliation pass.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic snapshot and initial store state",
	Long: `Generate a fixture: a snapshot file and, optionally, a seeded
catalog table that diverges from it in a controlled way. Running reconcile
afterwards must report exactly the expected metrics this command logs.

Examples:
  # Snapshot of 100 products, 10 changed, 5 removed, 8 new
  catalog-reconciler generate --keep 85 --change 10 --remove 5 --add 8 --seed

  # Also upload the snapshot to the configured bucket
  catalog-reconciler generate --keep 50 --add 50 --seed --upload`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genKeep, "keep", 50, "Products identical in store and snapshot")
	generateCmd.Flags().IntVar(&genChange, "change", 10, "Products changed in the snapshot")
	generateCmd.Flags().IntVar(&genRemove, "remove", 5, "Products present only in the store")
	generateCmd.Flags().IntVar(&genAdd, "add", 5, "Products present only in the snapshot")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Snapshot output path (defaults to the configured snapshot path)")
	generateCmd.Flags().BoolVar(&genSeed, "seed", false, "Seed the catalog table with the initial store state")
	generateCmd.Flags().BoolVar(&genUpload, "upload", false, "Upload the snapshot to the configured bucket")

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if genOut == "" {
		genOut = cfg.Snapshot.Path
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	plan := fixture.Plan{Keep: genKeep, Change: genChange, Remove: genRemove, Add: genAdd}
	f := fixture.Generate(plan)

	data := fixture.EncodeSnapshot(f.Snapshot, cfg.Snapshot.Delim())
	if err := os.WriteFile(genOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	l.Info("snapshot written",
		zap.String("path", genOut),
		zap.Int("rows", len(f.Snapshot)),
	)

	if genSeed {
		if err := seedCatalog(ctx, cfg, f, l); err != nil {
			return err
		}
	}

	if genUpload {
		if err := uploadSnapshot(ctx, cfg, data, l); err != nil {
			return err
		}
	}

	l.Info("expected reconciliation outcome",
		zap.Int64("added", f.Expected.Added),
		zap.Int64("updated", f.Expected.Updated),
		zap.Int64("deleted", f.Expected.Deleted),
	)
	_ = l.Sync()
	return nil
}

// seedCatalog replaces the catalog table contents with the fixture's initial
// store state.
func seedCatalog(ctx context.Context, cfg *config.Config, f *fixture.Fixture, l *zap.Logger) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Start from a clean table so the fixture fully defines the store state.
	if err := db.WithContext(ctx).
		Table(cfg.Snapshot.Table).
		Where("1 = 1").
		Delete(nil).Error; err != nil {
		return fmt.Errorf("failed to clear table %s: %w", cfg.Snapshot.Table, err)
	}

	catalog := store.NewCatalog(db, cfg.Snapshot.Table)
	for i := range f.Initial {
		if _, err := catalog.Insert(ctx, &f.Initial[i]); err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}

	l.Info("catalog seeded",
		zap.String("table", cfg.Snapshot.Table),
		zap.Int("products", len(f.Initial)),
	)
	return nil
}

// uploadSnapshot pushes the rendered snapshot to the configured bucket,
// creating the bucket on first use.
func uploadSnapshot(ctx context.Context, cfg *config.Config, data []byte, l *zap.Logger) error {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{Region: cfg.Storage.Region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	_, err = client.PutObject(
		ctx,
		cfg.Storage.Bucket,
		cfg.Snapshot.Object,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/csv"},
	)
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}

	l.Info("snapshot uploaded",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("object", cfg.Snapshot.Object),
	)
	return nil
}
