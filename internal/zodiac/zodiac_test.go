package zodiac

import "testing"

func TestOf_MonthBoundaries(t *testing.T) {
	tests := []struct {
		month   int
		last    int
		earlier Sign
		later   Sign
	}{
		{1, 19, Capricorn, Aquarius},
		{2, 18, Aquarius, Pisces},
		{3, 20, Pisces, Aries},
		{4, 19, Aries, Taurus},
		{5, 20, Taurus, Gemini},
		{6, 21, Gemini, Cancer},
		{7, 22, Cancer, Leo},
		{8, 22, Leo, Virgo},
		{9, 22, Virgo, Libra},
		{10, 23, Libra, Scorpio},
		{11, 22, Scorpio, Sagittarius},
		{12, 21, Sagittarius, Capricorn},
	}

	for _, tt := range tests {
		if got := Of(tt.month, tt.last); got != tt.earlier {
			t.Errorf("Of(%d, %d) = %s, want %s", tt.month, tt.last, got, tt.earlier)
		}
		if got := Of(tt.month, tt.last+1); got != tt.later {
			t.Errorf("Of(%d, %d) = %s, want %s", tt.month, tt.last+1, got, tt.later)
		}
		if got, ok := Threshold(tt.month); !ok || got != tt.last {
			t.Errorf("Threshold(%d) = %d, %v; want %d, true", tt.month, got, ok, tt.last)
		}
	}
}

func TestOf_TotalOverValidDates(t *testing.T) {
	valid := make(map[Sign]bool)
	for _, s := range Signs() {
		valid[s] = true
	}

	seen := make(map[Sign]bool)
	for month := 1; month <= 12; month++ {
		for day := 1; day <= 31; day++ {
			s := Of(month, day)
			if !valid[s] {
				t.Fatalf("Of(%d, %d) = %q, not a known sign", month, day, s)
			}
			seen[s] = true
		}
	}
	if len(seen) != 12 {
		t.Errorf("saw %d distinct signs over the year, want 12", len(seen))
	}
}

func TestOf_KnownBirthdays(t *testing.T) {
	tests := []struct {
		month, day int
		want       Sign
	}{
		{1, 5, Capricorn},
		{6, 28, Cancer},
		{4, 22, Taurus},
		{10, 11, Libra},
		{3, 20, Pisces},
		{11, 7, Scorpio},
		{12, 31, Capricorn},
		{8, 10, Leo},
	}
	for _, tt := range tests {
		if got := Of(tt.month, tt.day); got != tt.want {
			t.Errorf("Of(%d, %d) = %s, want %s", tt.month, tt.day, got, tt.want)
		}
	}
}

func TestSigns_Order(t *testing.T) {
	signs := Signs()
	if len(signs) != 12 {
		t.Fatalf("len(Signs()) = %d, want 12", len(signs))
	}
	if signs[0] != Capricorn || signs[11] != Sagittarius {
		t.Errorf("Signs() = %v, want Capricorn first and Sagittarius last", signs)
	}
}

func TestThreshold_OutOfRange(t *testing.T) {
	if _, ok := Threshold(13); ok {
		t.Error("Threshold(13) ok = true, want false")
	}
}
