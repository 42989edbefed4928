package snapshot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"catalog-reconciler/feature/catalog/models"
)

// fieldCount is the number of delimited fields in one snapshot row:
// id, name, price, created_at, updated_at.
const fieldCount = 5

// Header returns the canonical header line for the given delimiter.
func Header(delim byte) string {
	return strings.Join([]string{"id", "name", "price", "created_at", "updated_at"}, string(delim))
}

// RowError is a parse or reconcile fault attached to a single snapshot row.
// Row is the zero-based index within the data rows (header excluded).
type RowError struct {
	Row  int
	Line string
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ParseRow parses one data row into a Product.
// The format defines no escaping, so a field containing the delimiter is
// unsupported and surfaces as a field-count error.
func ParseRow(row string, delim byte) (*models.Product, error) {
	fields := strings.Split(row, string(delim))
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}

	id := strings.TrimSpace(fields[0])
	if id == "" {
		return nil, fmt.Errorf("empty product id")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", fields[2], err)
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price %v", price)
	}

	createdAt, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", fields[3], err)
	}

	updatedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", fields[4], err)
	}

	return &models.Product{
		ID:        id,
		Name:      fields[1],
		Price:     price,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// FormatRow renders a product as one snapshot data row.
// Inverse of ParseRow; used by the fixture generator.
func FormatRow(p *models.Product, delim byte) string {
	fields := []string{
		p.ID,
		p.Name,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	return strings.Join(fields, string(delim))
}
