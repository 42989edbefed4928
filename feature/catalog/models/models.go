// Package models defines the catalog domain types.
package models

import "time"

// Product is one catalog entry. ID is the stable identity and never changes
// once assigned; every other field is replaced wholesale on reconciliation.
type Product struct {
	// ID is the unique product identifier (UUID).
	ID string `gorm:"column:id;primaryKey" json:"id"`

	// Name is the display name of the product.
	Name string `gorm:"column:name" json:"name"`

	// Price is the unit price. Never negative.
	Price float64 `gorm:"column:price" json:"price"`

	// CreatedAt is the creation timestamp carried by the snapshot.
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	// UpdatedAt is the last-update timestamp carried by the snapshot.
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// Equal reports whether the mutable fields of two products match.
// Identity is not compared; callers match products by ID first.
func (p Product) Equal(other Product) bool {
	return p.Name == other.Name &&
		p.Price == other.Price &&
		p.CreatedAt.Equal(other.CreatedAt) &&
		p.UpdatedAt.Equal(other.UpdatedAt)
}
