package animal

import (
	"encoding/json"
	"fmt"
)

// DatasetIndex numbers the 60 characters of the dataset, 1 through 60.
type DatasetIndex int

// Valid reports whether i is within 1..60.
func (i DatasetIndex) Valid() bool { return i >= 1 && i <= 60 }

// FallbackIndex numbers the 12 fallback animals, 0 through 11. It is a
// separate space from DatasetIndex: FallbackIndex(4) and DatasetIndex(4)
// name unrelated animals.
type FallbackIndex int

// Valid reports whether i is within 0..11.
func (i FallbackIndex) Valid() bool { return i >= 0 && i <= 11 }

// Source records where an animal result came from.
type Source string

const (
	SourceDataset  Source = "dataset"
	SourceFallback Source = "fallback"
)

// Result is the outcome of resolving an animal sign. Exactly one of the two
// index spaces is populated, selected by Source.
type Result struct {
	Source      Source
	Label       string
	Description string
	Color       string

	datasetIndex  DatasetIndex
	fallbackIndex FallbackIndex
}

// DatasetIndex returns the 1..60 index; ok is false for fallback results.
func (r Result) DatasetIndex() (DatasetIndex, bool) {
	if r.Source != SourceDataset {
		return 0, false
	}
	return r.datasetIndex, true
}

// FallbackIndex returns the 0..11 index; ok is false for dataset results.
func (r Result) FallbackIndex() (FallbackIndex, bool) {
	if r.Source != SourceFallback {
		return 0, false
	}
	return r.fallbackIndex, true
}

// String renders "label (dataset #41)" or "label (fallback #4)".
func (r Result) String() string {
	if i, ok := r.DatasetIndex(); ok {
		return fmt.Sprintf("%s (dataset #%d)", r.Label, i)
	}
	i, _ := r.FallbackIndex()
	return fmt.Sprintf("%s (fallback #%d)", r.Label, i)
}

func fromRow(row Row) Result {
	return Result{
		Source:       SourceDataset,
		Label:        row.Animal,
		Description:  row.Label,
		Color:        row.Color,
		datasetIndex: row.Index,
	}
}

// Fallback computes the reduced fallback result: (year+month+day) mod 12
// through the 12-animal table. Color is always empty.
func Fallback(year, month, day int) Result {
	i := FallbackIndex(mod(year+month+day, 12))
	return Result{
		Source:        SourceFallback,
		Label:         FallbackAnimal(i),
		fallbackIndex: i,
	}
}

type resultJSON struct {
	Source        Source         `json:"source"`
	DatasetIndex  *DatasetIndex  `json:"dataset_index,omitempty"`
	FallbackIndex *FallbackIndex `json:"fallback_index,omitempty"`
	Label         string         `json:"label"`
	Description   string         `json:"description,omitempty"`
	Color         string         `json:"color"`
}

// MarshalJSON emits the index under a key named after its space so
// consumers cannot read a fallback index as a dataset index.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Source:      r.Source,
		Label:       r.Label,
		Description: r.Description,
		Color:       r.Color,
	}
	if i, ok := r.DatasetIndex(); ok {
		out.DatasetIndex = &i
	}
	if i, ok := r.FallbackIndex(); ok {
		out.FallbackIndex = &i
	}
	return json.Marshal(out)
}

func mod(n, m int) int {
	return ((n % m) + m) % m
}
