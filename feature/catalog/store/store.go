package store

import (
	"context"

	"catalog-reconciler/feature/catalog/models"
)

// OpKind is the type of a buffered store operation.
type OpKind string

const (
	// OpUpdate replaces the mutable fields of a product by identity.
	OpUpdate OpKind = "update"
	// OpDelete removes a product by identity.
	OpDelete OpKind = "delete"
)

// Operation is one entry in a heterogeneous batch write.
// Update operations carry the full product; delete operations only the ID.
type Operation struct {
	Kind    OpKind
	ID      string
	Product *models.Product
}

// UpdateOp builds a buffered update operation for a product.
func UpdateOp(p *models.Product) Operation {
	return Operation{Kind: OpUpdate, ID: p.ID, Product: p}
}

// DeleteOp builds a buffered delete operation for an identity.
func DeleteOp(id string) Operation {
	return Operation{Kind: OpDelete, ID: id}
}

// BulkResult reports what a batch write actually changed, as counted by the
// store. Modified excludes rows whose values were already identical.
type BulkResult struct {
	Modified int64
	Deleted  int64
}

// Store is the persisted product collection being reconciled.
// The store, not its callers, is authoritative on whether a write modified
// anything: all counts come from the underlying database.
type Store interface {
	// FindByID returns the product with the given identity, or (nil, nil)
	// when no such product is persisted.
	FindByID(ctx context.Context, id string) (*models.Product, error)

	// Insert persists a new product and returns the number of rows inserted.
	Insert(ctx context.Context, p *models.Product) (int64, error)

	// Update replaces all mutable fields of the product with the given
	// identity and returns the number of rows the database reports changed.
	// An update that changes no values reports zero.
	Update(ctx context.Context, p *models.Product) (int64, error)

	// BulkWrite applies a mixed batch of update and delete operations as a
	// single unit and reports what changed.
	BulkWrite(ctx context.Context, ops []Operation) (BulkResult, error)

	// ListIDs enumerates every persisted identity.
	ListIDs(ctx context.Context) ([]string, error)
}
