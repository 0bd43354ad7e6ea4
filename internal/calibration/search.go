package calibration

import (
	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/calendar"
	"github.com/HendryAvila/uranai/internal/star"
)

// Outcome is one candidate evaluated against one case. Want is the
// expected index and is meaningless when Known is false.
type Outcome struct {
	CaseID string `json:"case"`
	Got    int    `json:"got"`
	Want   int    `json:"want"`
	Known  bool   `json:"known"`
	Match  bool   `json:"match"`
}

// CandidateReport collects one candidate's outcomes.
type CandidateReport struct {
	Name     string    `json:"name"`
	Target   Target    `json:"target"`
	Matched  []string  `json:"matched"`
	Failed   []string  `json:"failed"`
	Outcomes []Outcome `json:"outcomes"`
}

// Report is the result of a Search.
type Report struct {
	Cases      []string          `json:"cases"`
	Candidates []CandidateReport `json:"candidates"`
}

// Search evaluates every candidate against every case. It is a pure
// function of its arguments; it never ranks or picks a candidate.
func Search(catalog []Candidate, cases []Case) Report {
	report := Report{
		Cases:      make([]string, 0, len(cases)),
		Candidates: make([]CandidateReport, 0, len(catalog)),
	}
	for _, c := range cases {
		report.Cases = append(report.Cases, c.ID)
	}

	for _, cand := range catalog {
		cr := CandidateReport{
			Name:     cand.Name,
			Target:   cand.Target,
			Matched:  []string{},
			Failed:   []string{},
			Outcomes: make([]Outcome, 0, len(cases)),
		}
		for _, c := range cases {
			o := evaluate(cand, c)
			cr.Outcomes = append(cr.Outcomes, o)
			if o.Match {
				cr.Matched = append(cr.Matched, c.ID)
			} else {
				cr.Failed = append(cr.Failed, c.ID)
			}
		}
		report.Candidates = append(report.Candidates, cr)
	}
	return report
}

func evaluate(cand Candidate, c Case) Outcome {
	got := cand.Evaluate(calendar.SerialIndex(c.Date), c.Date.Year, c.Date.Month, c.Date.Day)
	want, known := Expected(cand.Target, c)
	return Outcome{
		CaseID: c.ID,
		Got:    got,
		Want:   want,
		Known:  known,
		Match:  known && got == want,
	}
}

// Expected derives the index a candidate for target should produce for c,
// from the case's label and the known label tables.
func Expected(target Target, c Case) (int, bool) {
	switch target {
	case TargetAnimal:
		i, ok := animal.IndexOfCharacter(c.ExpectedAnimal)
		return int(i), ok
	case TargetStar:
		i, ok := star.IndexOf(c.ExpectedStar)
		return int(i), ok
	default:
		return 0, false
	}
}

// Candidate returns the report for the named candidate.
func (r Report) Candidate(name string) (CandidateReport, bool) {
	for _, c := range r.Candidates {
		if c.Name == name {
			return c, true
		}
	}
	return CandidateReport{}, false
}

// MatchesAll reports whether the candidate reproduced every case.
func (c CandidateReport) MatchesAll() bool {
	return len(c.Failed) == 0 && len(c.Matched) > 0
}
