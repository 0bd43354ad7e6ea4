// Package star models the 12-category six-star sign (六星占術).
//
// No formula for it is known yet. The default Resolver therefore reports
// every date as pending; internal/calibration is how candidate formulas
// are checked against ground truth before one is wired in via Formula.
package star

import (
	"encoding/json"

	"github.com/HendryAvila/uranai/internal/calendar"
)

// Category is a six-star category index, 0 through 11.
type Category int

var labels = [12]string{
	"土星人+", "金星人+", "火星人+", "天王星人+", "木星人+", "水星人+",
	"土星人-", "金星人-", "火星人-", "天王星人-", "木星人-", "水星人-",
}

// Valid reports whether c is within 0..11.
func (c Category) Valid() bool { return c >= 0 && c < Category(len(labels)) }

// Label returns the category label, or "" when out of range.
func (c Category) Label() string {
	if !c.Valid() {
		return ""
	}
	return labels[c]
}

// IndexOf returns the category whose label is s.
func IndexOf(s string) (Category, bool) {
	for i, l := range labels {
		if l == s {
			return Category(i), true
		}
	}
	return 0, false
}

// Labels returns the 12 labels in index order.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels[:])
	return out
}

// Status tells whether a Resolution carries a category.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

// Resolution is either pending or a resolved Category.
type Resolution struct {
	category Category
	resolved bool
}

// Pending is the resolution for "no formula available".
func Pending() Resolution { return Resolution{} }

// Resolved wraps c. Out-of-range categories are treated as pending.
func Resolved(c Category) Resolution {
	if !c.Valid() {
		return Pending()
	}
	return Resolution{category: c, resolved: true}
}

// Category returns the category; ok is false while pending.
func (r Resolution) Category() (Category, bool) {
	return r.category, r.resolved
}

// Status returns StatusPending or StatusResolved.
func (r Resolution) Status() Status {
	if r.resolved {
		return StatusResolved
	}
	return StatusPending
}

// String returns the label, or "pending".
func (r Resolution) String() string {
	if c, ok := r.Category(); ok {
		return c.Label()
	}
	return string(StatusPending)
}

// MarshalJSON emits {"status":"pending"} or
// {"status":"resolved","category":4,"label":"木星人+"}.
func (r Resolution) MarshalJSON() ([]byte, error) {
	type out struct {
		Status   Status    `json:"status"`
		Category *Category `json:"category,omitempty"`
		Label    string    `json:"label,omitempty"`
	}
	o := out{Status: r.Status()}
	if c, ok := r.Category(); ok {
		o.Category = &c
		o.Label = c.Label()
	}
	return json.Marshal(o)
}

// Resolver produces a Resolution for a birth date.
type Resolver interface {
	Resolve(d calendar.Date) Resolution
}

// PendingResolver reports every date as pending.
type PendingResolver struct{}

// Resolve always returns Pending.
func (PendingResolver) Resolve(calendar.Date) Resolution { return Pending() }

// Formula adapts an arithmetic formula over (serial, year, month, day) to a
// Resolver. The result is reduced to 0..11.
type Formula func(serial, year, month, day int) int

// Resolve evaluates f for d.
func (f Formula) Resolve(d calendar.Date) Resolution {
	n := f(calendar.SerialIndex(d), d.Year, d.Month, d.Day)
	return Resolved(Category(((n % 12) + 12) % 12))
}
