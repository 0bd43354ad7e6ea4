package animal

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Resolver turns a date into an animal Result.
type Resolver struct {
	source DataSource
	logger *zap.Logger
}

// NewResolver creates a Resolver reading from source. A nil source always
// falls back; a nil logger discards output.
func NewResolver(source DataSource, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{source: source, logger: logger}
}

// Resolve looks (year, month, day) up in the dataset and falls back to the
// 12-animal table on any failure or miss. It never fails.
func (r *Resolver) Resolve(ctx context.Context, year, month, day int) Result {
	row, err := r.lookup(ctx, Key{Year: year, Month: month, Day: day})
	if err != nil {
		r.logger.Debug("animal dataset fallback",
			zap.Int("year", year), zap.Int("month", month), zap.Int("day", day),
			zap.Error(err))
		return Fallback(year, month, day)
	}
	return fromRow(row)
}

// lookup is the single place a dataset outcome is decided: a row or an
// error, never both.
func (r *Resolver) lookup(ctx context.Context, k Key) (row Row, err error) {
	if r.source == nil {
		return Row{}, fmt.Errorf("%w: no data source", ErrDatasetUnavailable)
	}

	table, err := tryRead(ctx, r.source)
	if err != nil {
		return Row{}, err
	}

	row, ok := table.Lookup(k)
	if !ok {
		return Row{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrDatasetNoMatch, k.Year, k.Month, k.Day)
	}
	return row, nil
}

// tryRead shields the resolver from a DataSource that panics.
func tryRead(ctx context.Context, src DataSource) (table *Table, err error) {
	defer func() {
		if p := recover(); p != nil {
			table, err = nil, fmt.Errorf("%w: data source panic: %v", ErrDatasetUnavailable, p)
		}
	}()
	return src.TryRead(ctx)
}
