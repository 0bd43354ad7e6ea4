// Package calibration checks candidate arithmetic formulas against dates
// whose animal and six-star answers are known.
//
// It is a diagnostic: Search reports which candidates reproduce which
// ground-truth cases and leaves the choice of formula to a person.
package calibration

// Target names the numbering space a candidate produces.
type Target string

const (
	// TargetAnimal candidates produce a 1..60 dataset index.
	TargetAnimal Target = "animal"
	// TargetStar candidates produce a 0..11 six-star category.
	TargetStar Target = "star"
)

// Candidate is one formula under test.
type Candidate struct {
	Name     string
	Target   Target
	Evaluate func(serial, year, month, day int) int
}

// Catalog returns the fixed set of candidates, animal formulas first.
func Catalog() []Candidate {
	return []Candidate{
		{"(serial+8)%60+1", TargetAnimal, func(s, _, _, _ int) int { return mod(s+8, 60) + 1 }},
		{"(serial+7)%60+1", TargetAnimal, func(s, _, _, _ int) int { return mod(s+7, 60) + 1 }},
		{"(serial+9)%60+1", TargetAnimal, func(s, _, _, _ int) int { return mod(s+9, 60) + 1 }},
		{"(serial+0)%60+1", TargetAnimal, func(s, _, _, _ int) int { return mod(s, 60) + 1 }},
		{"(serial-1)%60+1", TargetAnimal, func(s, _, _, _ int) int { return mod(s-1, 60) + 1 }},
		{"serial%60+1", TargetAnimal, func(s, _, _, _ int) int { return mod(s, 60) + 1 }},

		{"(year+month+day)%12", TargetStar, func(_, y, m, d int) int { return mod(y+m+d, 12) }},
		{"(year+month*12+day)%12", TargetStar, func(_, y, m, d int) int { return mod(y+m*12+d, 12) }},
		{"(year+month*100+day)%12", TargetStar, func(_, y, m, d int) int { return mod(y+m*100+d, 12) }},
		{"serial%12", TargetStar, func(s, _, _, _ int) int { return mod(s, 12) }},
		{"(serial+6)%12", TargetStar, func(s, _, _, _ int) int { return mod(s+6, 12) }},
		{"(year*7+month*3+day)%12", TargetStar, func(_, y, m, d int) int { return mod(y*7+m*3+d, 12) }},
	}
}

// mod is the non-negative remainder.
func mod(n, m int) int {
	return ((n % m) + m) % m
}
