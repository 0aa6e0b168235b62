package revenue

import (
	"time"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// DepositState classifies a lease's security deposit: Outstanding is money
// still held against an active term, Released is money already returned to
// the tenant or no longer held because the term ended.
type DepositState struct {
	Outstanding valueobject.Money
	Released    valueobject.Money
}

// ClassifyDeposit computes the deposit state for one lease.
//
// refunded is the pre-aggregated sum of absolute amounts of succeeded
// deposit refunds linked to the lease. The held amount is the deposit minus
// refunds, floored at zero; refunded money always counts as released. A
// lease whose end date is not strictly after now is treated as fully
// released even without an explicit refund record.
func ClassifyDeposit(lease *entity.Lease, refunded valueobject.Money, now time.Time) DepositState {
	var state DepositState

	depositCents := valueobject.MoneyFromDecimal(lease.DepositAmount)
	if depositCents <= 0 {
		return state
	}

	applied := refunded
	if applied > depositCents {
		applied = depositCents
	}
	held := depositCents.Sub(applied)

	state.Released = refunded

	if !lease.EndedBy(now) {
		state.Outstanding = state.Outstanding.Add(held)
	} else {
		state.Released = state.Released.Add(held)
	}

	return state
}
