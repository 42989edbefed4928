package reconcile

// Metrics counts what one reconciliation pass changed. The zero value is the
// canonical starting point; counters only ever grow during a run.
type Metrics struct {
	// Added is the number of records inserted.
	Added int64 `json:"added"`
	// Updated is the number of records the store reports as modified.
	Updated int64 `json:"updated"`
	// Deleted is the number of records removed.
	Deleted int64 `json:"deleted"`
}

// Merge adds the counters of other into m.
func (m *Metrics) Merge(other Metrics) {
	m.Added += other.Added
	m.Updated += other.Updated
	m.Deleted += other.Deleted
}

// Sum returns the combined counters of two metrics values.
func (m Metrics) Sum(other Metrics) Metrics {
	m.Merge(other)
	return m
}

// OneAdded is the unit metrics value for a single insert.
func OneAdded() Metrics {
	return Metrics{Added: 1}
}

// OneUpdated is the unit metrics value for a single modification.
func OneUpdated() Metrics {
	return Metrics{Updated: 1}
}

// OneDeleted is the unit metrics value for a single removal.
func OneDeleted() Metrics {
	return Metrics{Deleted: 1}
}
