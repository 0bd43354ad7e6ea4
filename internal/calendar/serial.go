package calendar

// serialEpoch is serial day 1 of the legacy spreadsheet numbering.
var serialEpoch = Date{Year: 1900, Month: 1, Day: 1}

// leapBugCutoff is the first date that sits after the fictitious
// 1900-02-29. Every serial from here on is one higher than the real
// day count.
var leapBugCutoff = Date{Year: 1900, Month: 3, Day: 1}

const secondsPerDay = 24 * 60 * 60

// SerialIndex returns the spreadsheet serial number of d: 1900-01-01 is 1,
// and dates on or after 1900-03-01 carry one extra day for the 1900 leap
// day that never existed. The dataset and calibration formulas depend on
// this numbering, so the extra day must not be corrected.
func SerialIndex(d Date) int {
	days := int((d.time().Unix() - serialEpoch.time().Unix()) / secondsPerDay)
	serial := days + 1
	if !d.Before(leapBugCutoff) {
		serial++
	}
	return serial
}
