package dto

import (
	"testing"

	"github.com/rentfolio/backend/internal/application/usecase/revenue"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want revenue.PeriodRequest
	}{
		{"empty means all time", "", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
		{"explicit all", "all", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
		{"four digit year", "2026", revenue.PeriodRequest{Kind: revenue.PeriodYear, Year: 2026}},
		{"year and month", "2026-03", revenue.PeriodRequest{Kind: revenue.PeriodMonth, Year: 2026, Month: 3}},
		{"december", "2026-12", revenue.PeriodRequest{Kind: revenue.PeriodMonth, Year: 2026, Month: 12}},
		{"surrounding whitespace is trimmed", " 2026 ", revenue.PeriodRequest{Kind: revenue.PeriodYear, Year: 2026}},
		{"month thirteen falls back to all", "2026-13", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
		{"month zero falls back to all", "2026-00", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
		{"unpadded month falls back to all", "2026-3", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
		{"two digit year falls back to all", "26", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
		{"garbage falls back to all", "banana", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
		{"negative year falls back to all", "-202", revenue.PeriodRequest{Kind: revenue.PeriodAll}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePeriod(tc.raw)
			if got != tc.want {
				t.Errorf("ParsePeriod(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}
