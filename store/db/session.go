package db

import (
	"context"

	"github.com/pkg/errors"
)

// Row is one stored record. Canonical value types across both session
// implementations: uuid.UUID for uuid columns, string for text, float64 for
// double, time.Time for date.
type Row map[string]interface{}

var (
	// ErrRowNotFound is returned by Get when no row has the given key.
	ErrRowNotFound = errors.New("db: row not found")
	// ErrFilterNotAllowed is returned by Scan when an equality filter targets
	// a non-key column without the allow-filtering opt-in. The store is not
	// optimized for such scans, so callers must ask for them explicitly.
	ErrFilterNotAllowed = errors.New("db: filtering on non-key column requires allow filtering")
)

// Session is the keyed-lookup + scan contract every repository runs on.
// Cassandra backs it in production; an in-memory implementation backs tests.
type Session interface {
	// Get returns the single row with the given key columns.
	Get(ctx context.Context, table string, key Row) (Row, error)
	// Scan returns every row of the table matching the equality filter
	// (all rows when filter is empty). Filters on non-key columns require
	// allowFiltering.
	Scan(ctx context.Context, table string, filter Row, allowFiltering bool) ([]Row, error)
	// Insert writes a full row. Like the underlying store, it does not fail
	// on an existing key; uniqueness is the caller's concern.
	Insert(ctx context.Context, table string, row Row) error
	// Update applies only the given changes to the row with the given key.
	Update(ctx context.Context, table string, key Row, changes Row) error
	// Delete removes the row with the given key, silently when absent.
	Delete(ctx context.Context, table string, key Row) error
	Ping(ctx context.Context) error
	Close()
}

// Copy returns a shallow copy so callers can mutate results freely.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
