// Package zodiac maps a (month, day) pair to one of the 12 Western signs.
// The result depends on nothing else: not the year, not the dataset.
package zodiac

// Sign is a Western zodiac sign label.
type Sign string

const (
	Capricorn   Sign = "山羊座"
	Aquarius    Sign = "水瓶座"
	Pisces      Sign = "魚座"
	Aries       Sign = "牡羊座"
	Taurus      Sign = "牡牛座"
	Gemini      Sign = "双子座"
	Cancer      Sign = "蟹座"
	Leo         Sign = "獅子座"
	Virgo       Sign = "乙女座"
	Libra       Sign = "天秤座"
	Scorpio     Sign = "蠍座"
	Sagittarius Sign = "射手座"
)

// cutoff splits one month between two signs: days up to and including
// Last belong to Earlier, the rest to Later.
type cutoff struct {
	Last    int
	Earlier Sign
	Later   Sign
}

// cutoffs is indexed by month-1.
var cutoffs = [12]cutoff{
	{19, Capricorn, Aquarius},
	{18, Aquarius, Pisces},
	{20, Pisces, Aries},
	{19, Aries, Taurus},
	{20, Taurus, Gemini},
	{21, Gemini, Cancer},
	{22, Cancer, Leo},
	{22, Leo, Virgo},
	{22, Virgo, Libra},
	{23, Libra, Scorpio},
	{22, Scorpio, Sagittarius},
	{21, Sagittarius, Capricorn},
}

// Of returns the sign for the given month and day. Months outside 1-12 use
// the December rule so the function stays total; date validation belongs to
// the caller.
func Of(month, day int) Sign {
	c := cutoffs[11]
	if month >= 1 && month <= 12 {
		c = cutoffs[month-1]
	}
	if day <= c.Last {
		return c.Earlier
	}
	return c.Later
}

// Signs returns the 12 signs in calendar order starting at Capricorn.
func Signs() []Sign {
	out := make([]Sign, 0, len(cutoffs))
	for _, c := range cutoffs {
		out = append(out, c.Earlier)
	}
	return out
}

// Threshold returns the last day of month that still belongs to the
// earlier sign. ok is false for months outside 1-12.
func Threshold(month int) (day int, ok bool) {
	if month < 1 || month > 12 {
		return 0, false
	}
	return cutoffs[month-1].Last, true
}
