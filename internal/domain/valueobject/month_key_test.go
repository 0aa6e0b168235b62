package valueobject

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	t.Run("formats with zero padding", func(t *testing.T) {
		if got := NewMonthKey(2024, time.March); got != "2024-03" {
			t.Errorf("expected 2024-03, got %s", got)
		}
		if got := NewMonthKey(2024, time.December); got != "2024-12" {
			t.Errorf("expected 2024-12, got %s", got)
		}
	})

	t.Run("from time uses UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*3600)
		// 3am on the 1st in UTC+10 is still the previous month in UTC.
		local := time.Date(2024, time.March, 1, 3, 0, 0, 0, loc)
		if got := MonthKeyFor(local); got != "2024-02" {
			t.Errorf("expected 2024-02, got %s", got)
		}
	})

	t.Run("lexicographic order is chronological", func(t *testing.T) {
		ordered := []MonthKey{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02"}
		for i := 1; i < len(ordered); i++ {
			if !(ordered[i-1] < ordered[i]) {
				t.Errorf("expected %s < %s", ordered[i-1], ordered[i])
			}
			if !ordered[i].After(ordered[i-1]) {
				t.Errorf("expected %s to be After %s", ordered[i], ordered[i-1])
			}
		}
	})

	t.Run("year component", func(t *testing.T) {
		if got := MonthKey("2024-07").Year(); got != 2024 {
			t.Errorf("expected 2024, got %d", got)
		}
		if got := MonthKey("garbage").Year(); got != 0 {
			t.Errorf("expected 0 for malformed key, got %d", got)
		}
	})

	t.Run("next month rolls over years", func(t *testing.T) {
		if got := MonthKey("2023-12").Next(); got != "2024-01" {
			t.Errorf("expected 2024-01, got %s", got)
		}
	})
}
