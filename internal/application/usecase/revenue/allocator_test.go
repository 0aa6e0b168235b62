package revenue

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func leaseWith(start, end *time.Time, rent string) *entity.Lease {
	return &entity.Lease{
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: decimal.RequireFromString(rent),
	}
}

func TestAllocate_FullCalendarMonth(t *testing.T) {
	lease := leaseWith(date(2024, time.March, 1), date(2024, time.March, 31), "1000.00")

	alloc := Allocate(lease)

	key := valueobject.MonthKey("2024-03")
	if got := alloc.EarnedCents[key]; got != 100000 {
		t.Errorf("expected exactly 100000 cents for a full month, got %d", got)
	}
	if got := alloc.Nights[key]; got != 31 {
		t.Errorf("expected 31 nights, got %d", got)
	}
	if len(alloc.EarnedCents) != 1 {
		t.Errorf("expected a single month bucket, got %d", len(alloc.EarnedCents))
	}
}

func TestAllocate_MidMonthSpan(t *testing.T) {
	// Jan 15 - Feb 10 2024, rent $1,000.00. January holds 17 of 31 days,
	// February (leap year) 10 of 29.
	lease := leaseWith(date(2024, time.January, 15), date(2024, time.February, 10), "1000.00")

	alloc := Allocate(lease)

	if got := alloc.EarnedCents["2024-01"]; got != 54839 {
		t.Errorf("january: expected 54839 cents (round(100000*17/31)), got %d", got)
	}
	if got := alloc.EarnedCents["2024-02"]; got != 34483 {
		t.Errorf("february: expected 34483 cents (round(100000*10/29)), got %d", got)
	}
	if got := alloc.Nights["2024-01"]; got != 17 {
		t.Errorf("january: expected 17 nights, got %d", got)
	}
	if got := alloc.Nights["2024-02"]; got != 10 {
		t.Errorf("february: expected 10 nights, got %d", got)
	}

	totalNights := 0
	for _, n := range alloc.Nights {
		totalNights += n
	}
	if totalNights != 27 {
		t.Errorf("expected 27 total nights, got %d", totalNights)
	}
}

func TestAllocate_NightsSumToInclusiveSpan(t *testing.T) {
	cases := []struct {
		name       string
		start, end *time.Time
	}{
		{"single day", date(2024, time.June, 5), date(2024, time.June, 5)},
		{"cross year", date(2023, time.November, 20), date(2024, time.February, 3)},
		{"multi year", date(2022, time.March, 10), date(2024, time.July, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alloc := Allocate(leaseWith(tc.start, tc.end, "1500.00"))

			want := int(tc.end.Sub(*tc.start)/(24*time.Hour)) + 1
			got := 0
			for _, n := range alloc.Nights {
				got += n
			}
			if got != want {
				t.Errorf("expected %d nights, got %d", want, got)
			}
		})
	}
}

func TestAllocate_RoundingDriftBounded(t *testing.T) {
	// An awkward rent over many partial months: the sum of per-month
	// allocations may drift from rent x monthsSpanned, but by at most one
	// cent per month touched. The drift is intentional and preserved.
	lease := leaseWith(date(2023, time.January, 1), date(2024, time.December, 31), "1033.37")

	alloc := Allocate(lease)

	var total int64
	for _, cents := range alloc.EarnedCents {
		total += cents.Cents()
	}

	monthsTouched := int64(len(alloc.EarnedCents))
	nominal := int64(103337) * monthsTouched
	drift := total - nominal
	if drift < 0 {
		drift = -drift
	}
	if drift > monthsTouched {
		t.Errorf("rounding drift %d exceeds one cent per month (%d months)", drift, monthsTouched)
	}
}

func TestAllocate_DegenerateLeases(t *testing.T) {
	cases := []struct {
		name  string
		lease *entity.Lease
	}{
		{"missing start", leaseWith(nil, date(2024, time.March, 31), "1000.00")},
		{"missing end", leaseWith(date(2024, time.March, 1), nil, "1000.00")},
		{"inverted range", leaseWith(date(2024, time.March, 31), date(2024, time.March, 1), "1000.00")},
		{"zero rent", leaseWith(date(2024, time.March, 1), date(2024, time.March, 31), "0")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alloc := Allocate(tc.lease)
			if len(alloc.EarnedCents) != 0 || len(alloc.Nights) != 0 {
				t.Errorf("expected empty allocations, got %d/%d buckets",
					len(alloc.EarnedCents), len(alloc.Nights))
			}
		})
	}
}

func TestAllocate_StripsTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 1, 0, 0, 0, time.UTC)
	lease := leaseWith(&start, &end, "1000.00")

	alloc := Allocate(lease)

	if got := alloc.Nights["2024-03"]; got != 31 {
		t.Errorf("expected time-of-day to be stripped (31 nights), got %d", got)
	}
	if got := alloc.EarnedCents["2024-03"]; got != 100000 {
		t.Errorf("expected full month cents 100000, got %d", got)
	}
}
