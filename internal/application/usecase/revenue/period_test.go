package revenue

import (
	"testing"

	"github.com/rentfolio/backend/internal/domain/valueobject"
)

func TestPeriodRequest_Filter(t *testing.T) {
	t.Run("all accepts everything", func(t *testing.T) {
		filter := PeriodRequest{Kind: PeriodAll}.Filter()

		for _, key := range []valueobject.MonthKey{"2023-01", "2024-12", "1999-06"} {
			if !filter(key) {
				t.Errorf("expected %s to be accepted", key)
			}
		}
	})

	t.Run("year matches the year component only", func(t *testing.T) {
		filter := PeriodRequest{Kind: PeriodYear, Year: 2024}.Filter()

		if !filter("2024-01") || !filter("2024-12") {
			t.Error("expected 2024 months to be accepted")
		}
		if filter("2023-12") || filter("2025-01") {
			t.Error("expected other years to be rejected")
		}
	})

	t.Run("month matches exactly one key", func(t *testing.T) {
		filter := PeriodRequest{Kind: PeriodMonth, Year: 2024, Month: 3}.Filter()

		if !filter("2024-03") {
			t.Error("expected 2024-03 to be accepted")
		}
		if filter("2024-04") {
			t.Error("expected 2024-04 to be rejected")
		}
		if filter("2023-03") {
			t.Error("expected 2023-03 to be rejected")
		}
	})

	t.Run("month is zero padded", func(t *testing.T) {
		filter := PeriodRequest{Kind: PeriodMonth, Year: 2024, Month: 3}.Filter()
		if filter("2024-3") {
			t.Error("unpadded key must not match")
		}
	})

	t.Run("malformed requests degrade to all", func(t *testing.T) {
		cases := []PeriodRequest{
			{Kind: PeriodYear},                          // missing year
			{Kind: PeriodMonth, Year: 2024},             // missing month
			{Kind: PeriodMonth, Year: 2024, Month: 13},  // month out of range
			{Kind: PeriodMonth, Year: -5, Month: 3},     // bad year
			{Kind: PeriodKind("quarter"), Year: 2024},   // unknown kind
		}

		for _, req := range cases {
			filter := req.Filter()
			if !filter("2019-07") || !filter("2031-02") {
				t.Errorf("request %+v should degrade to the all-time predicate", req)
			}
			if !req.IsAll() {
				t.Errorf("request %+v should report IsAll", req)
			}
		}
	})
}
