package snapshot

// Config holds configuration for snapshot loading.
type Config struct {
	// Source selects where the snapshot comes from: "file" or "storage".
	Source string `mapstructure:"source" default:"file"`
	// Path is the local snapshot file path (file source).
	Path string `mapstructure:"path" default:"snapshot.csv"`
	// Object is the snapshot object name in the bucket (storage source).
	Object string `mapstructure:"object" default:"snapshots/catalog.csv"`
	// Delimiter is the single-character field separator.
	Delimiter string `mapstructure:"delimiter" default:","`
	// Table is the catalog table (collection) being reconciled.
	Table string `mapstructure:"table" default:"products"`
}

// Delim returns the configured delimiter as a byte, defaulting to a comma
// when the configured value is not exactly one character.
func (c Config) Delim() byte {
	if len(c.Delimiter) != 1 {
		return ','
	}
	return c.Delimiter[0]
}
