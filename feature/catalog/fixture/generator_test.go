package fixture

import (
	"strings"
	"testing"

	"catalog-reconciler/feature/catalog/models"
	"catalog-reconciler/feature/catalog/reconcile"
	"catalog-reconciler/feature/catalog/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	plan := Plan{Keep: 3, Change: 2, Remove: 1, Add: 4}
	f := Generate(plan)

	assert.Len(t, f.Initial, plan.Keep+plan.Change+plan.Remove)
	assert.Len(t, f.Snapshot, plan.Total())
	assert.Equal(t, reconcile.Metrics{Added: 4, Updated: 2, Deleted: 1}, f.Expected)

	// Identities are unique across the whole fixture.
	seen := make(map[string]struct{})
	for _, p := range append(append([]string{}, ids(f.Initial)...), ids(f.Snapshot)...) {
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, plan.Keep+plan.Change+plan.Remove+plan.Add)

	// Kept products are byte-for-byte identical on both sides; changed
	// products share identity but differ in mutable fields.
	snapByID := make(map[string]int)
	for i, p := range f.Snapshot {
		snapByID[p.ID] = i
	}
	kept, changed := 0, 0
	for _, p := range f.Initial {
		i, ok := snapByID[p.ID]
		if !ok {
			continue
		}
		if p.Equal(f.Snapshot[i]) {
			kept++
		} else {
			changed++
		}
	}
	assert.Equal(t, plan.Keep, kept)
	assert.Equal(t, plan.Change, changed)
}

func TestGenerate_EmptyPlan(t *testing.T) {
	f := Generate(Plan{})
	assert.Empty(t, f.Initial)
	assert.Empty(t, f.Snapshot)
	assert.Equal(t, reconcile.Metrics{}, f.Expected)
}

func TestEncodeSnapshot_RoundTrip(t *testing.T) {
	f := Generate(Plan{Keep: 2, Add: 1})
	data := EncodeSnapshot(f.Snapshot, ',')

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, len(f.Snapshot)+1)
	assert.Equal(t, snapshot.Header(','), lines[0])

	for i, line := range lines[1:] {
		p, err := snapshot.ParseRow(line, ',')
		require.NoError(t, err)
		assert.Equal(t, f.Snapshot[i].ID, p.ID)
		assert.True(t, f.Snapshot[i].Equal(*p))
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
