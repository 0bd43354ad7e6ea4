package animal

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column order of the dataset file:
// serial-date, year, month, day, index (1-60), animal, label, color.
const (
	colDate = iota
	colYear
	colMonth
	colDay
	colIndex
	colAnimal
	colLabel
	colColor
	columnCount
)

// CSVFile reads the dataset from a CSV file on every TryRead.
type CSVFile struct {
	Path string
}

// TryRead reads and parses the file.
func (c CSVFile) TryRead(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}
	if c.Path == "" {
		return nil, fmt.Errorf("%w: no dataset path configured", ErrDatasetUnavailable)
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}
	defer f.Close()

	t, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Path, err)
	}
	return t, nil
}

// ParseCSV parses dataset CSV content. The first line is a header and is
// skipped. Lines are parsed one at a time so a malformed row is dropped
// without affecting its neighbours. A dataset with no usable row is
// ErrDatasetMalformed; a read failure is ErrDatasetUnavailable.
func ParseCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}

	content := strings.TrimPrefix(string(data), "\ufeff")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: empty file", ErrDatasetMalformed)
	}

	lines := strings.Split(content, "\n")
	rows := make([]Row, 0, len(lines))
	skipped := 0
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, ok := parseLine(line)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no valid rows (%d skipped)", ErrDatasetMalformed, skipped)
	}

	t := NewTable(rows)
	t.skipped = skipped
	return t, nil
}

func parseLine(line string) (Row, bool) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	fields, err := cr.Read()
	if err != nil || len(fields) < columnCount {
		return Row{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(strings.ReplaceAll(fields[i], `"`, ""))
	}

	var nums [4]int
	for i, col := range []int{colYear, colMonth, colDay, colIndex} {
		n, err := strconv.Atoi(fields[col])
		if err != nil {
			return Row{}, false
		}
		nums[i] = n
	}

	idx := DatasetIndex(nums[3])
	if !idx.Valid() {
		return Row{}, false
	}

	return Row{
		Date:   fields[colDate],
		Key:    Key{Year: nums[0], Month: nums[1], Day: nums[2]},
		Index:  idx,
		Animal: fields[colAnimal],
		Label:  fields[colLabel],
		Color:  fields[colColor],
	}, true
}
