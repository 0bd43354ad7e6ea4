// Package fortune composes the individual resolvers into one record per
// birth date.
package fortune

import (
	"context"
	"fmt"

	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/calendar"
	"github.com/HendryAvila/uranai/internal/star"
	"github.com/HendryAvila/uranai/internal/zodiac"
)

// todayFunc is overridden in tests.
var todayFunc = calendar.Today

// Record is the full fortune for one birth date.
type Record struct {
	Birth  calendar.Date   `json:"-"`
	Age    int             `json:"age"`
	Zodiac zodiac.Sign     `json:"zodiac"`
	Animal animal.Result   `json:"animal"`
	Star   star.Resolution `json:"star"`
}

// Aggregator resolves Records. It holds no per-request state and is safe
// for concurrent use as long as its resolvers are.
type Aggregator struct {
	animals *animal.Resolver
	stars   star.Resolver
}

// New creates an Aggregator. A nil animals resolver always falls back; a
// nil stars resolver reports every star as pending.
func New(animals *animal.Resolver, stars star.Resolver) *Aggregator {
	if animals == nil {
		animals = animal.NewResolver(nil, nil)
	}
	if stars == nil {
		stars = star.PendingResolver{}
	}
	return &Aggregator{animals: animals, stars: stars}
}

// Resolve computes every attribute of birth as seen on today. Age is
// clamped at zero when today precedes birth.
func (a *Aggregator) Resolve(ctx context.Context, birth, today calendar.Date) Record {
	return Record{
		Birth:  birth,
		Age:    max(calendar.Age(birth, today), 0),
		Zodiac: zodiac.Of(birth.Month, birth.Day),
		Animal: a.animals.Resolve(ctx, birth.Year, birth.Month, birth.Day),
		Star:   a.stars.Resolve(birth),
	}
}

// ResolveString parses s and resolves it against the current local date.
// An unparseable date is returned as an error wrapping
// calendar.ErrInvalidDate; it never falls back. A birth date after today
// resolves normally with age 0.
func (a *Aggregator) ResolveString(ctx context.Context, s string) (Record, error) {
	birth, err := calendar.Parse(s)
	if err != nil {
		return Record{}, fmt.Errorf("fortune: %w", err)
	}
	return a.Resolve(ctx, birth, todayFunc()), nil
}

// Lines renders the record as labelled lines for terminal output.
func (r Record) Lines() []string {
	return []string{
		fmt.Sprintf("birth:  %s", r.Birth),
		fmt.Sprintf("age:    %d", r.Age),
		fmt.Sprintf("zodiac: %s", r.Zodiac),
		fmt.Sprintf("animal: %s", r.Animal),
		fmt.Sprintf("star:   %s", r.Star),
	}
}
