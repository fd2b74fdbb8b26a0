// Package tabular defines the storage contract for lista persistence: a
// grid of raw text cells, nothing more. Every backend (Google Sheets, SQL,
// Redis, memory) implements the same four operations; all typing and schema
// knowledge stays with the caller so backends remain interchangeable.
package tabular

import "context"

// Store is a single worksheet-like table of text rows. Rows keep the order
// they were written in. Implementations do not interpret cell contents and
// do not cache: every Read hits the backend.
type Store interface {
	// ReadAllRows returns every row in order. A missing or empty table
	// yields an empty slice, not an error.
	ReadAllRows(ctx context.Context) ([][]string, error)

	// WriteRows replaces the entire table with rows.
	WriteRows(ctx context.Context, rows [][]string) error

	// AppendRows adds rows after the current last row.
	AppendRows(ctx context.Context, rows [][]string) error

	// Clear removes every row.
	Clear(ctx context.Context) error
}
