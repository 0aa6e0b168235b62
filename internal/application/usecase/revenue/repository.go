package revenue

import (
	"context"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// ReportRepository supplies the read-only snapshots the engine consumes. The
// engine never writes; persistence concerns stay entirely behind this
// interface.
type ReportRepository interface {
	// ListPayments returns every payment record.
	ListPayments(ctx context.Context) ([]*entity.Payment, error)

	// ListDepositRefunds returns succeeded refund payments with the deposit
	// refund category, for matching against leases.
	ListDepositRefunds(ctx context.Context) ([]*entity.Payment, error)

	// ListLeases returns every lease, including ones whose dates or rent
	// are unusable for accrual; the engine skips those itself.
	ListLeases(ctx context.Context) ([]*entity.Lease, error)
}
