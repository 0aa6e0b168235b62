package valueobject

import (
	"fmt"
	"time"
)

// MonthKey is a canonical "YYYY-MM" month token. Its lexicographic ordering
// coincides with chronological ordering, which makes it usable both as a map
// key and as a sort key when projecting timelines. It is the join key between
// the cash-basis and accrual-basis timeseries.
type MonthKey string

// monthKeyLayout is the time layout producing a MonthKey.
const monthKeyLayout = "2006-01"

// MonthKeyFor returns the key of the month containing t, evaluated in UTC.
func MonthKeyFor(t time.Time) MonthKey {
	return MonthKey(t.UTC().Format(monthKeyLayout))
}

// NewMonthKey builds a key from a numeric year and month (1-12), zero-padding
// the month to two digits.
func NewMonthKey(year int, month time.Month) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", year, int(month)))
}

// Year returns the four-digit year component, or 0 for a malformed key.
func (k MonthKey) Year() int {
	var year int
	if _, err := fmt.Sscanf(string(k), "%4d-", &year); err != nil {
		return 0
	}
	return year
}

// Time returns the first instant of the month in UTC. Malformed keys return
// the zero time.
func (k MonthKey) Time() time.Time {
	t, err := time.Parse(monthKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Next returns the key of the following calendar month.
func (k MonthKey) Next() MonthKey {
	return MonthKeyFor(k.Time().AddDate(0, 1, 0))
}

// After reports whether k is strictly later than other. Lexicographic
// comparison is chronological for well-formed keys.
func (k MonthKey) After(other MonthKey) bool {
	return k > other
}

func (k MonthKey) String() string {
	return string(k)
}
