package reconcile

import (
	"context"

	"catalog-reconciler/feature/catalog/models"
	"catalog-reconciler/feature/catalog/store"

	"go.uber.org/zap"
)

// Engine applies snapshot records to the store: immediate per-row writes
// during the row loop, then one batch phase after the loop.
type Engine struct {
	store store.Store
	log   *zap.Logger
}

// NewEngine creates an engine over the given store.
func NewEngine(s store.Store, log *zap.Logger) *Engine {
	return &Engine{store: s, log: log}
}

// ReconcileRow applies the record parsed from row index row.
//
// A persisted record gets a full-field replace (never a field-level merge);
// the updated counter grows by however many rows the store reports changed,
// so a value-identical row counts as unchanged. An absent record is inserted.
// Either way the identity is marked covered for deletion-set computation.
//
// Any store failure is logged with the row index and swallowed: fault
// isolation is per-row, and later rows must still be processed.
func (e *Engine) ReconcileRow(ctx context.Context, run *Run, row int, rec *models.Product) {
	existing, err := e.store.FindByID(ctx, rec.ID)
	if err != nil {
		e.log.Error("row lookup failed",
			zap.Int("row", row),
			zap.String("product_id", rec.ID),
			zap.Error(err),
		)
		return
	}

	if existing != nil {
		modified, err := e.store.Update(ctx, rec)
		if err != nil {
			e.log.Error("row update failed",
				zap.Int("row", row),
				zap.String("product_id", rec.ID),
				zap.Error(err),
			)
			return
		}
		run.Metrics.Updated += modified
		run.BufferUpdate(rec)
		run.MarkCovered(rec.ID)
		return
	}

	inserted, err := e.store.Insert(ctx, rec)
	if err != nil {
		e.log.Error("row insert failed",
			zap.Int("row", row),
			zap.String("product_id", rec.ID),
			zap.Error(err),
		)
		return
	}
	run.Metrics.Added += inserted
	run.MarkCovered(rec.ID)
}

// ExecuteBatch runs the deferred batch phase: replay the buffered updates as
// one batch write, then delete every persisted identity the row loop did not
// touch. Covered identities are read from the run's covered set, which was
// captured during the row loop, so draining the update buffer first can never
// schedule a freshly written record for deletion.
//
// The whole phase is one failure unit: any error is logged at batch
// granularity, the remaining steps are skipped, and the metrics already
// accumulated from per-row writes are left intact.
func (e *Engine) ExecuteBatch(ctx context.Context, run *Run) {
	updates := run.DrainUpdates()
	if len(updates) > 0 {
		if _, err := e.store.BulkWrite(ctx, updates); err != nil {
			e.log.Error("batch update failed",
				zap.Int("operations", len(updates)),
				zap.Error(err),
			)
			return
		}
	}

	ids, err := e.store.ListIDs(ctx)
	if err != nil {
		e.log.Error("failed to enumerate persisted ids", zap.Error(err))
		return
	}

	var deletes []store.Operation
	for _, id := range ids {
		if !run.Covered(id) {
			deletes = append(deletes, store.DeleteOp(id))
		}
	}
	if len(deletes) == 0 {
		return
	}

	res, err := e.store.BulkWrite(ctx, deletes)
	if err != nil {
		e.log.Error("batch delete failed",
			zap.Int("operations", len(deletes)),
			zap.Error(err),
		)
		return
	}
	run.Metrics.Merge(Metrics{Deleted: res.Deleted})
}
