package snapshot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		p, err := ParseRow("p-1,Oak Chair,49.99,2026-08-01T12:00:00Z,2026-08-02T09:30:00Z", ',')
		require.NoError(t, err)

		assert.Equal(t, "p-1", p.ID)
		assert.Equal(t, "Oak Chair", p.Name)
		assert.Equal(t, 49.99, p.Price)
		assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), p.CreatedAt)
		assert.Equal(t, time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC), p.UpdatedAt)
	})

	t.Run("alternate delimiter", func(t *testing.T) {
		p, err := ParseRow("p-1;Oak Chair;49.99;2026-08-01T12:00:00Z;2026-08-02T09:30:00Z", ';')
		require.NoError(t, err)
		assert.Equal(t, "Oak Chair", p.Name)
	})

	tests := []struct {
		name string
		row  string
	}{
		{"too few fields", "p-1,Oak Chair,49.99"},
		{"too many fields", "p-1,Oak,Chair,49.99,2026-08-01T12:00:00Z,2026-08-02T09:30:00Z"},
		{"empty id", " ,Oak Chair,49.99,2026-08-01T12:00:00Z,2026-08-02T09:30:00Z"},
		{"bad price", "p-1,Oak Chair,cheap,2026-08-01T12:00:00Z,2026-08-02T09:30:00Z"},
		{"negative price", "p-1,Oak Chair,-1,2026-08-01T12:00:00Z,2026-08-02T09:30:00Z"},
		{"bad created_at", "p-1,Oak Chair,49.99,yesterday,2026-08-02T09:30:00Z"},
		{"bad updated_at", "p-1,Oak Chair,49.99,2026-08-01T12:00:00Z,tomorrow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseRow(tt.row, ',')
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestFormatRow_RoundTrip(t *testing.T) {
	row := "p-1,Oak Chair,49.99,2026-08-01T12:00:00Z,2026-08-02T09:30:00Z"
	p, err := ParseRow(row, ',')
	require.NoError(t, err)
	assert.Equal(t, row, FormatRow(p, ','))
}

func TestRowError(t *testing.T) {
	cause := errors.New("invalid price")
	err := &RowError{Row: 7, Line: "p-1,x,bad,...", Err: cause}

	assert.Contains(t, err.Error(), "row 7")
	assert.ErrorIs(t, err, cause)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "id,name,price,created_at,updated_at", Header(','))
	assert.Equal(t, "id|name|price|created_at|updated_at", Header('|'))
}
