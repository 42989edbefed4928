package reconcile

import (
	"context"
	"errors"
	"fmt"

	"catalog-reconciler/feature/catalog/snapshot"

	"go.uber.org/zap"
)

// State is one phase of a reconciliation pass.
type State string

const (
	StateIdle             State = "idle"
	StateLoadingSnapshot  State = "loading_snapshot"
	StateReconcilingRows  State = "reconciling_rows"
	StateExecutingBatch   State = "executing_batch"
	StateReportingMetrics State = "reporting_metrics"
	StateDone             State = "done"
)

// ErrAlreadyRun is returned when a driver is asked to run a second pass.
var ErrAlreadyRun = errors.New("reconciliation driver already ran")

// Driver orchestrates one full reconciliation pass. States advance strictly
// forward and the machine runs exactly once per driver.
//
// Only snapshot loading fails fatally; row faults and batch faults are
// contained by the engine and never surface as an error here.
type Driver struct {
	engine *Engine
	source snapshot.Source
	delim  byte
	log    *zap.Logger
	state  State
}

// NewDriver creates a driver for one pass over the given snapshot source.
func NewDriver(engine *Engine, source snapshot.Source, delim byte, log *zap.Logger) *Driver {
	return &Driver{
		engine: engine,
		source: source,
		delim:  delim,
		log:    log,
		state:  StateIdle,
	}
}

// State returns the current phase.
func (d *Driver) State() State {
	return d.state
}

// Run executes the pass and returns its final metrics.
func (d *Driver) Run(ctx context.Context) (Metrics, error) {
	if d.state != StateIdle {
		return Metrics{}, ErrAlreadyRun
	}

	d.state = StateLoadingSnapshot
	rows, err := snapshot.Load(ctx, d.source)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	d.log.Info("snapshot loaded",
		zap.String("source", d.source.Name()),
		zap.Int("rows", len(rows)),
	)

	d.state = StateReconcilingRows
	run := NewRun()
	total := len(rows)
	lastPct := -1
	for i, raw := range rows {
		rec, parseErr := snapshot.ParseRow(raw, d.delim)
		if parseErr != nil {
			rowErr := &snapshot.RowError{Row: i, Line: raw, Err: parseErr}
			d.log.Error("snapshot row rejected", zap.Int("row", i), zap.Error(rowErr))
		} else {
			d.engine.ReconcileRow(ctx, run, i, rec)
		}

		// A decile several consecutive rows land on is reported once.
		if pct := (i + 1) * 100 / total; pct%10 == 0 && pct != lastPct {
			lastPct = pct
			d.log.Debug("reconciliation progress",
				zap.Int("percent", pct),
				zap.Int("row", i+1),
				zap.Int("total", total),
			)
		}
	}

	d.state = StateExecutingBatch
	d.engine.ExecuteBatch(ctx, run)

	d.state = StateReportingMetrics
	d.log.Info("reconciliation complete",
		zap.Int64("added", run.Metrics.Added),
		zap.Int64("updated", run.Metrics.Updated),
		zap.Int64("deleted", run.Metrics.Deleted),
		zap.Int("rows", total),
	)

	d.state = StateDone
	return run.Metrics, nil
}
