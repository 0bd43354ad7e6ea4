package calibration

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/HendryAvila/uranai/internal/calendar"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCasesYAML []byte

// Case is one ground-truth date with its expected labels. An empty label
// means the answer for that target is unknown.
type Case struct {
	ID             string
	Date           calendar.Date
	ExpectedAnimal string
	ExpectedStar   string
}

type caseFile struct {
	Cases []caseEntry `yaml:"cases"`
}

type caseEntry struct {
	ID     string `yaml:"id"`
	Date   string `yaml:"date"`
	Animal string `yaml:"animal"`
	Star   string `yaml:"star"`
}

// LoadCases reads ground-truth cases from YAML:
//
//	cases:
//	  - date: "2008-01-05"
//	    animal: 大器晩成のたぬき
//	    star: 木星人+
//
// id is optional and defaults to the date.
func LoadCases(r io.Reader) ([]Case, error) {
	var f caseFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("calibration: parse cases: %w", err)
	}

	cases := make([]Case, 0, len(f.Cases))
	seen := make(map[string]bool, len(f.Cases))
	for i, e := range f.Cases {
		d, err := calendar.Parse(e.Date)
		if err != nil {
			return nil, fmt.Errorf("calibration: case %d: %w", i+1, err)
		}
		id := e.ID
		if id == "" {
			id = d.String()
		}
		if seen[id] {
			return nil, fmt.Errorf("calibration: duplicate case id %q", id)
		}
		seen[id] = true
		cases = append(cases, Case{ID: id, Date: d, ExpectedAnimal: e.Animal, ExpectedStar: e.Star})
	}
	return cases, nil
}

// DefaultCases returns the embedded ground-truth set.
func DefaultCases() []Case {
	cases, err := LoadCases(bytes.NewReader(defaultCasesYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded cases.yaml: %v", err))
	}
	return cases
}

// DefaultCasesYAML returns the raw embedded ground-truth file.
func DefaultCasesYAML() []byte {
	out := make([]byte, len(defaultCasesYAML))
	copy(out, defaultCasesYAML)
	return out
}
