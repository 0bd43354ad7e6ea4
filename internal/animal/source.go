// Package animal resolves the 60-cycle animal sign for a birth date.
//
// Resolution is layered: an exact (year, month, day) lookup in the external
// dataset first, then a deterministic 12-animal fallback. Every way the
// dataset can fail (missing, unreadable, malformed, no matching row) leads
// to the same fallback; no error reaches the caller.
//
// The dataset is reached through the DataSource capability so the
// degrade-on-failure contract is a single explicit branch in Resolver
// rather than scattered error handling.
package animal

import (
	"context"
	"errors"
	"sort"
)

// Dataset failure taxonomy. All three end in the fallback path.
var (
	ErrDatasetUnavailable = errors.New("animal dataset unavailable")
	ErrDatasetMalformed   = errors.New("animal dataset malformed")
	ErrDatasetNoMatch     = errors.New("no dataset row for date")
)

// DataSource yields the dataset table. Any non-nil error means "no table".
type DataSource interface {
	TryRead(ctx context.Context) (*Table, error)
}

// SourceFunc adapts a function to DataSource.
type SourceFunc func(ctx context.Context) (*Table, error)

// TryRead calls f.
func (f SourceFunc) TryRead(ctx context.Context) (*Table, error) { return f(ctx) }

// Key is the exact lookup key of a dataset row.
type Key struct {
	Year  int
	Month int
	Day   int
}

// Row is one dataset record.
type Row struct {
	Date   string // serial-date column, kept verbatim
	Key    Key
	Index  DatasetIndex
	Animal string
	Label  string
	Color  string
}

// Table is an immutable, keyed view of the dataset.
type Table struct {
	rows    map[Key]Row
	skipped int
}

// NewTable builds a table from rows. When two rows share a key the first
// one wins, matching a top-to-bottom scan of the source file.
func NewTable(rows []Row) *Table {
	t := &Table{rows: make(map[Key]Row, len(rows))}
	for _, r := range rows {
		if _, dup := t.rows[r.Key]; dup {
			continue
		}
		t.rows[r.Key] = r
	}
	return t
}

// Lookup returns the row for k.
func (t *Table) Lookup(k Key) (Row, bool) {
	if t == nil {
		return Row{}, false
	}
	r, ok := t.rows[k]
	return r, ok
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Skipped returns how many malformed rows were dropped while building the
// table from a file.
func (t *Table) Skipped() int {
	if t == nil {
		return 0
	}
	return t.skipped
}

// Rows returns all rows ordered by date.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return out
}
