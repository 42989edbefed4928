package reconcile

import (
	"catalog-reconciler/feature/catalog/models"
	"catalog-reconciler/feature/catalog/store"
)

// Run is the transient context of one reconciliation pass. It owns the
// metrics, the buffered update operations and the set of identities touched
// by the row loop. Everything here is discarded when the pass ends.
//
// The covered set is populated independently of the operation buffer: the
// batch executor clears the buffer before computing deletions, so the buffer
// must never double as the record of which identities this run touched.
type Run struct {
	// Metrics accumulates the pass counters. Components receive the Run by
	// pointer; there is no process-wide metrics state.
	Metrics Metrics

	updates []store.Operation
	covered map[string]struct{}
}

// NewRun creates an empty run context.
func NewRun() *Run {
	return &Run{covered: make(map[string]struct{})}
}

// BufferUpdate appends an update operation equivalent to an already applied
// per-row write.
func (r *Run) BufferUpdate(p *models.Product) {
	r.updates = append(r.updates, store.UpdateOp(p))
}

// MarkCovered records that this run touched the given identity.
func (r *Run) MarkCovered(id string) {
	r.covered[id] = struct{}{}
}

// Covered reports whether this run touched the given identity.
func (r *Run) Covered(id string) bool {
	_, ok := r.covered[id]
	return ok
}

// CoveredCount returns the number of distinct identities touched.
func (r *Run) CoveredCount() int {
	return len(r.covered)
}

// DrainUpdates returns the buffered update operations and clears the buffer.
func (r *Run) DrainUpdates() []store.Operation {
	ops := r.updates
	r.updates = nil
	return ops
}
