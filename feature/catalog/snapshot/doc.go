// Package snapshot loads and parses flat-file catalog snapshots.
//
// A snapshot is a delimited text file: the first line is a header naming the
// fields in order (id, name, price, created_at, updated_at), each following
// line is one product. The header is positional and never validated. There is
// no quoting or escaping; a field containing the delimiter is not supported.
//
// Snapshots are read either from the local filesystem (FileSource) or from
// object storage (ObjectSource), where production snapshots are delivered.
//
// Parsing is per-row: ParseRow rejects a malformed row without affecting its
// neighbors, which is what lets the reconciliation pass isolate faults to the
// single row that caused them.
package snapshot
