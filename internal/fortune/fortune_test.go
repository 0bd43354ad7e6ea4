package fortune

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/calendar"
	"github.com/HendryAvila/uranai/internal/star"
	"github.com/HendryAvila/uranai/internal/zodiac"
)

const datasetCSV = `date,year,month,day,index,animal,label,color
2008-01-05,2008,1,5,41,大器晩成のたぬき,大器晩成のたぬき,ブラウン
`

func fixedToday(t *testing.T, d calendar.Date) {
	t.Helper()
	orig := todayFunc
	t.Cleanup(func() { todayFunc = orig })
	todayFunc = func() calendar.Date { return d }
}

func datasetResolver(t *testing.T) *animal.Resolver {
	t.Helper()
	table, err := animal.ParseCSV(strings.NewReader(datasetCSV))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	src := animal.SourceFunc(func(context.Context) (*animal.Table, error) { return table, nil })
	return animal.NewResolver(src, nil)
}

// ─── Resolve ─────────────────────────────────────────────────────────────────

func TestResolve_AgeBoundary(t *testing.T) {
	agg := New(nil, nil)
	birth := calendar.MustNew(2008, 1, 5)

	if got := agg.Resolve(context.Background(), birth, calendar.MustNew(2024, 1, 4)).Age; got != 15 {
		t.Errorf("age on 2024-01-04 = %d, want 15", got)
	}
	if got := agg.Resolve(context.Background(), birth, calendar.MustNew(2024, 1, 5)).Age; got != 16 {
		t.Errorf("age on 2024-01-05 = %d, want 16", got)
	}
}

func TestResolve_AgeNeverNegative(t *testing.T) {
	agg := New(nil, nil)
	rec := agg.Resolve(context.Background(), calendar.MustNew(2030, 6, 1), calendar.MustNew(2024, 1, 1))
	if rec.Age != 0 {
		t.Errorf("Age = %d, want 0", rec.Age)
	}
}

func TestResolve_DatasetHit(t *testing.T) {
	agg := New(datasetResolver(t), nil)
	rec := agg.Resolve(context.Background(), calendar.MustNew(2008, 1, 5), calendar.MustNew(2024, 1, 5))

	if rec.Zodiac != zodiac.Capricorn {
		t.Errorf("Zodiac = %q, want %q", rec.Zodiac, zodiac.Capricorn)
	}
	if rec.Animal.Source != animal.SourceDataset {
		t.Fatalf("Animal.Source = %q, want dataset", rec.Animal.Source)
	}
	if i, _ := rec.Animal.DatasetIndex(); i != 41 {
		t.Errorf("DatasetIndex = %d, want 41", i)
	}
	if rec.Animal.Color != "ブラウン" {
		t.Errorf("Color = %q, want %q", rec.Animal.Color, "ブラウン")
	}
	if rec.Star.Status() != star.StatusPending {
		t.Errorf("Star = %s, want pending", rec.Star)
	}
}

func TestResolve_ZodiacIndependentOfAnimalPath(t *testing.T) {
	birth := calendar.MustNew(2008, 1, 5)
	today := calendar.MustNew(2024, 1, 5)

	hit := New(datasetResolver(t), nil).Resolve(context.Background(), birth, today)
	miss := New(nil, nil).Resolve(context.Background(), birth, today)

	if hit.Animal.Source == miss.Animal.Source {
		t.Fatal("expected one dataset and one fallback result")
	}
	if hit.Zodiac != miss.Zodiac || hit.Age != miss.Age {
		t.Errorf("zodiac/age differ between paths: %+v vs %+v", hit, miss)
	}
}

func TestResolve_FallbackWhenNoDataset(t *testing.T) {
	rec := New(nil, nil).Resolve(context.Background(), calendar.MustNew(2008, 1, 5), calendar.MustNew(2024, 1, 5))

	i, ok := rec.Animal.FallbackIndex()
	if !ok {
		t.Fatalf("Animal.Source = %q, want fallback", rec.Animal.Source)
	}
	if i != 10 {
		t.Errorf("FallbackIndex = %d, want 10", i)
	}
	if rec.Animal.Color != "" {
		t.Errorf("fallback Color = %q, want empty", rec.Animal.Color)
	}
}

func TestResolve_UsesStarResolver(t *testing.T) {
	sum := star.Formula(func(_, y, m, d int) int { return y + m + d })
	rec := New(nil, sum).Resolve(context.Background(), calendar.MustNew(1990, 5, 15), calendar.MustNew(2024, 1, 1))

	c, ok := rec.Star.Category()
	if !ok {
		t.Fatal("Star is pending, want resolved")
	}
	if c.Label() != "土星人-" {
		t.Errorf("Star = %s, want 土星人-", c.Label())
	}
}

// ─── ResolveString ───────────────────────────────────────────────────────────

func TestResolveString_UsesToday(t *testing.T) {
	fixedToday(t, calendar.MustNew(2024, 1, 4))

	rec, err := New(nil, nil).ResolveString(context.Background(), "2008/1/5")
	if err != nil {
		t.Fatalf("ResolveString: %v", err)
	}
	if rec.Age != 15 {
		t.Errorf("Age = %d, want 15", rec.Age)
	}
	if rec.Birth != calendar.MustNew(2008, 1, 5) {
		t.Errorf("Birth = %s, want 2008-01-05", rec.Birth)
	}
}

func TestResolveString_InvalidDate(t *testing.T) {
	_, err := New(nil, nil).ResolveString(context.Background(), "2008-02-30")
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}

func TestResolveString_FutureBirth(t *testing.T) {
	fixedToday(t, calendar.MustNew(2024, 1, 4))

	for _, in := range []string{"2024-01-05", "2030-06-15", "2024-01-04"} {
		rec, err := New(nil, nil).ResolveString(context.Background(), in)
		if err != nil {
			t.Errorf("ResolveString(%q) unexpected error: %v", in, err)
			continue
		}
		if rec.Age != 0 {
			t.Errorf("ResolveString(%q) age = %d, want 0", in, rec.Age)
		}
		if rec.Birth.String() != in {
			t.Errorf("ResolveString(%q) birth = %s", in, rec.Birth)
		}
		if rec.Zodiac == "" || rec.Animal.Label == "" {
			t.Errorf("ResolveString(%q) returned a partial record: %+v", in, rec)
		}
	}
}

// ─── Output ──────────────────────────────────────────────────────────────────

func TestRecord_JSON(t *testing.T) {
	rec := New(nil, nil).Resolve(context.Background(), calendar.MustNew(2008, 1, 5), calendar.MustNew(2024, 1, 5))

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["age"] != float64(16) {
		t.Errorf("age = %v, want 16", got["age"])
	}
	if got["zodiac"] != string(zodiac.Capricorn) {
		t.Errorf("zodiac = %v", got["zodiac"])
	}
	a := got["animal"].(map[string]any)
	if _, ok := a["dataset_index"]; ok {
		t.Error("fallback record leaked a dataset_index")
	}
	if a["fallback_index"] != float64(10) {
		t.Errorf("fallback_index = %v, want 10", a["fallback_index"])
	}
	if s := got["star"].(map[string]any); s["status"] != "pending" {
		t.Errorf("star = %v, want pending", s)
	}
	if _, ok := got["Birth"]; ok {
		t.Error("Birth should not be serialized")
	}
}

func TestRecord_Lines(t *testing.T) {
	rec := New(nil, nil).Resolve(context.Background(), calendar.MustNew(2008, 1, 5), calendar.MustNew(2024, 1, 5))
	out := strings.Join(rec.Lines(), "\n")

	for _, want := range []string{"2008-01-05", "16", "山羊座", "こじか (fallback #10)", "pending"} {
		if !strings.Contains(out, want) {
			t.Errorf("Lines() missing %q:\n%s", want, out)
		}
	}
}
