package revenue

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

func TestClassifyDeposit(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	depositLease := func(end *time.Time, deposit string) *entity.Lease {
		return &entity.Lease{
			StartDate:     date(2024, time.January, 1),
			EndDate:       end,
			DepositAmount: decimal.RequireFromString(deposit),
		}
	}

	t.Run("active lease holds deposit as outstanding", func(t *testing.T) {
		lease := depositLease(date(2024, time.December, 31), "10.00")

		state := ClassifyDeposit(lease, 0, now)

		if state.Outstanding != 1000 {
			t.Errorf("expected outstanding 1000, got %d", state.Outstanding)
		}
		if state.Released != 0 {
			t.Errorf("expected released 0, got %d", state.Released)
		}
	})

	t.Run("ended lease releases deposit without refund record", func(t *testing.T) {
		lease := depositLease(date(2024, time.March, 31), "10.00")

		state := ClassifyDeposit(lease, 0, now)

		if state.Outstanding != 0 {
			t.Errorf("expected outstanding 0, got %d", state.Outstanding)
		}
		if state.Released != 1000 {
			t.Errorf("expected released 1000, got %d", state.Released)
		}
	})

	t.Run("partial refund splits the deposit", func(t *testing.T) {
		lease := depositLease(date(2024, time.December, 31), "10.00")

		state := ClassifyDeposit(lease, 400, now)

		if state.Outstanding != 600 {
			t.Errorf("expected outstanding 600, got %d", state.Outstanding)
		}
		if state.Released != 400 {
			t.Errorf("expected released 400, got %d", state.Released)
		}
	})

	t.Run("refund above the deposit never goes negative", func(t *testing.T) {
		lease := depositLease(date(2024, time.December, 31), "10.00")

		state := ClassifyDeposit(lease, 2500, now)

		if state.Outstanding != 0 {
			t.Errorf("expected outstanding 0, got %d", state.Outstanding)
		}
		if state.Released != 2500 {
			t.Errorf("expected released to keep the full refund 2500, got %d", state.Released)
		}
	})

	t.Run("open-ended lease holds deposit as outstanding", func(t *testing.T) {
		lease := depositLease(nil, "15.00")

		state := ClassifyDeposit(lease, 0, now)

		if state.Outstanding != 1500 {
			t.Errorf("expected outstanding 1500, got %d", state.Outstanding)
		}
		if state.Released != 0 {
			t.Errorf("expected released 0, got %d", state.Released)
		}
	})

	t.Run("lease ending today counts as released", func(t *testing.T) {
		lease := depositLease(date(2024, time.June, 15), "10.00")

		state := ClassifyDeposit(lease, 0, now)

		if state.Outstanding != 0 || state.Released != 1000 {
			t.Errorf("expected 0/1000, got %d/%d", state.Outstanding, state.Released)
		}
	})

	t.Run("zero deposit contributes nothing", func(t *testing.T) {
		lease := depositLease(date(2024, time.December, 31), "0")

		state := ClassifyDeposit(lease, 500, now)

		if state.Outstanding != 0 || state.Released != 0 {
			t.Errorf("expected 0/0, got %d/%d", state.Outstanding, state.Released)
		}
	})
}
