// Package fixture produces synthetic snapshots and matching initial store
// states for exercising the reconciliation pass.
package fixture

import (
	"bytes"
	"fmt"
	"time"

	"catalog-reconciler/feature/catalog/models"
	"catalog-reconciler/feature/catalog/reconcile"
	"catalog-reconciler/feature/catalog/snapshot"

	"github.com/google/uuid"
)

// Plan describes the divergence the generated fixture builds between the
// initial store state and the snapshot.
type Plan struct {
	// Keep is the number of products identical on both sides.
	Keep int
	// Change is the number of products present on both sides with
	// different mutable fields in the snapshot.
	Change int
	// Remove is the number of products present only in the store.
	Remove int
	// Add is the number of products present only in the snapshot.
	Add int
}

// Total returns the number of snapshot records the plan produces.
func (p Plan) Total() int {
	return p.Keep + p.Change + p.Add
}

// Fixture is one generated scenario: seed Initial into the store, reconcile
// against Snapshot, and a correct pass reports exactly Expected.
type Fixture struct {
	Initial  []models.Product
	Snapshot []models.Product
	Expected reconcile.Metrics
}

// Generate builds a fixture for the given plan. Identities are fresh UUIDs;
// timestamps are second-granularity UTC so they survive an RFC3339
// round-trip through the flat file.
func Generate(plan Plan) *Fixture {
	now := time.Now().UTC().Truncate(time.Second)
	f := &Fixture{}

	next := func(i int) models.Product {
		return models.Product{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("product-%04d", i),
			Price:     float64(100+i) + 0.5,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			UpdatedAt: now,
		}
	}

	seq := 0
	for i := 0; i < plan.Keep; i++ {
		p := next(seq)
		seq++
		f.Initial = append(f.Initial, p)
		f.Snapshot = append(f.Snapshot, p)
	}

	for i := 0; i < plan.Change; i++ {
		p := next(seq)
		seq++
		f.Initial = append(f.Initial, p)

		changed := p
		changed.Name = p.Name + "-v2"
		changed.Price = p.Price * 1.1
		changed.UpdatedAt = now.Add(time.Minute)
		f.Snapshot = append(f.Snapshot, changed)
		f.Expected.Merge(reconcile.OneUpdated())
	}

	for i := 0; i < plan.Remove; i++ {
		p := next(seq)
		seq++
		f.Initial = append(f.Initial, p)
		f.Expected.Merge(reconcile.OneDeleted())
	}

	for i := 0; i < plan.Add; i++ {
		p := next(seq)
		seq++
		f.Snapshot = append(f.Snapshot, p)
		f.Expected.Merge(reconcile.OneAdded())
	}

	return f
}

// EncodeSnapshot renders products as a complete snapshot file: header line
// first, then one delimited row per product, newline-terminated.
func EncodeSnapshot(products []models.Product, delim byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(snapshot.Header(delim))
	buf.WriteByte('\n')
	for i := range products {
		buf.WriteString(snapshot.FormatRow(&products[i], delim))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
