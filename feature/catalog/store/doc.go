// Package store persists the product catalog being reconciled.
//
// The Store interface is the full contract the reconciliation pass needs:
// point lookup by identity, single insert, full-field update, heterogeneous
// batch write (updates mixed with deletes) and key enumeration. Catalog is
// the gorm/MySQL implementation, bound to a table name at construction.
//
// Every mutation reports how many rows the database actually changed; the
// reconciliation metrics are built from those counts rather than from any
// field comparison done in Go.
package store
