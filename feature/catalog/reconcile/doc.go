// Package reconcile brings the persisted product catalog into exact
// agreement with a flat-file snapshot.
//
// Every snapshot record is classified exactly once: inserted when only the
// snapshot has it, updated when both sides have it and the store reports the
// write changed something, deleted when only the store has it, and unchanged
// otherwise. After a successful pass the store's key set equals the
// snapshot's identities and every stored record matches its snapshot row.
//
// # Architecture
//
// The pass has three cooperating parts:
//
//  1. Engine.ReconcileRow: immediate per-row insert-or-update. Applying each
//     row as it arrives means work already done survives an early
//     termination. Each write also buffers an equivalent batch operation on
//     the Run and marks the identity as covered.
//
//  2. Engine.ExecuteBatch: runs once, after all rows (the row loop is the
//     synchronization barrier the deletion computation depends on). It
//     replays the buffered updates as one batch write, enumerates persisted
//     identities, and deletes the ones the row loop never covered.
//
//  3. Driver: the once-only state machine wiring the phases together —
//     load snapshot, reconcile rows, execute batch, report metrics.
//
// # Fault containment
//
// A snapshot file that cannot be read is fatal and aborts the pass. A parse
// or store failure on one row is logged with its row index and skips only
// that row. A failure in the batch phase is logged once and abandons the
// remaining batch steps while keeping everything the row loop committed.
// Nothing is retried.
package reconcile
