package store

import (
	"context"
	"errors"
	"fmt"

	"catalog-reconciler/feature/catalog/models"

	"gorm.io/gorm"
)

// Catalog is the gorm-backed Store implementation bound to one table.
// The table name is the "collection name" the reconciliation targets.
type Catalog struct {
	db    *gorm.DB
	table string
}

// NewCatalog creates a Catalog over the given connection and table.
func NewCatalog(db *gorm.DB, table string) *Catalog {
	return &Catalog{db: db, table: table}
}

// Table returns the collection name this catalog is bound to.
func (s *Catalog) Table() string {
	return s.table
}

func (s *Catalog) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).
		Table(s.table).
		Where("id = ?", id).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %s: %w", id, err)
	}
	return &p, nil
}

func (s *Catalog) Insert(ctx context.Context, p *models.Product) (int64, error) {
	result := s.db.WithContext(ctx).
		Table(s.table).
		Create(p)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert product %s: %w", p.ID, result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Catalog) Update(ctx context.Context, p *models.Product) (int64, error) {
	result := s.db.WithContext(ctx).
		Table(s.table).
		Where("id = ?", p.ID).
		Updates(updateColumns(p))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update product %s: %w", p.ID, result.Error)
	}
	return result.RowsAffected, nil
}

// BulkWrite applies the batch inside a single transaction. Updates run
// one statement per product; deletes collapse into one IN-clause statement.
func (s *Catalog) BulkWrite(ctx context.Context, ops []Operation) (BulkResult, error) {
	var res BulkResult
	if len(ops) == 0 {
		return res, nil
	}

	var deleteIDs []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			switch op.Kind {
			case OpUpdate:
				result := tx.Table(s.table).
					Where("id = ?", op.Product.ID).
					Updates(updateColumns(op.Product))
				if result.Error != nil {
					return fmt.Errorf("batch update of %s failed: %w", op.Product.ID, result.Error)
				}
				res.Modified += result.RowsAffected
			case OpDelete:
				deleteIDs = append(deleteIDs, op.ID)
			default:
				return fmt.Errorf("unknown operation kind %q", op.Kind)
			}
		}

		if len(deleteIDs) > 0 {
			result := tx.Table(s.table).
				Where("id IN ?", deleteIDs).
				Delete(nil)
			if result.Error != nil {
				return fmt.Errorf("batch delete failed: %w", result.Error)
			}
			res.Deleted = result.RowsAffected
		}

		return nil
	})
	if err != nil {
		return BulkResult{}, err
	}

	return res, nil
}

func (s *Catalog) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Table(s.table).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	return ids, nil
}

// updateColumns maps the mutable fields to their columns. Identity is never
// part of the update set.
func updateColumns(p *models.Product) map[string]any {
	return map[string]any{
		"name":       p.Name,
		"price":      p.Price,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}
