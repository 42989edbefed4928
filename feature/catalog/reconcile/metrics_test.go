package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_ZeroValue(t *testing.T) {
	var m Metrics
	assert.Equal(t, Metrics{Added: 0, Updated: 0, Deleted: 0}, m)
}

func TestMetrics_Merge(t *testing.T) {
	m := Metrics{Added: 1, Updated: 2}
	m.Merge(Metrics{Added: 3, Deleted: 4})
	assert.Equal(t, Metrics{Added: 4, Updated: 2, Deleted: 4}, m)
}

func TestMetrics_Sum(t *testing.T) {
	a := Metrics{Added: 1}
	b := Metrics{Updated: 1, Deleted: 2}
	assert.Equal(t, Metrics{Added: 1, Updated: 1, Deleted: 2}, a.Sum(b))
	// Sum is value-based; operands are untouched.
	assert.Equal(t, Metrics{Added: 1}, a)
}

func TestMetrics_UnitConstructors(t *testing.T) {
	assert.Equal(t, Metrics{Added: 1}, OneAdded())
	assert.Equal(t, Metrics{Updated: 1}, OneUpdated())
	assert.Equal(t, Metrics{Deleted: 1}, OneDeleted())

	// Units compose into whole-run expectations.
	expected := OneAdded().Sum(OneAdded()).Sum(OneUpdated()).Sum(OneDeleted())
	assert.Equal(t, Metrics{Added: 2, Updated: 1, Deleted: 1}, expected)
}
