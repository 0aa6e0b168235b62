package revenue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rentfolio/backend/internal/application/adapter"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// SummaryCache caches computed summaries keyed by the normalized period
// request. A miss returns (nil, nil). Cache failures are treated as misses
// by the use case, never as request failures.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*Summary, error)
	Set(ctx context.Context, key string, summary *Summary) error
	Invalidate(ctx context.Context) error
}

// GetSummaryInput represents the input for computing a revenue summary.
type GetSummaryInput struct {
	Period PeriodRequest
}

// GetSummaryUseCase fetches the payment and lease snapshots, runs the
// aggregation engine and caches the result.
type GetSummaryUseCase struct {
	reportRepo ReportRepository
	cache      SummaryCache
	clock      adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance. cache may
// be nil, in which case every request recomputes.
func NewGetSummaryUseCase(reportRepo ReportRepository, cache SummaryCache, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		reportRepo: reportRepo,
		cache:      cache,
		clock:      clock,
	}
}

// Execute returns the revenue summary for the requested period.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*Summary, error) {
	key := cacheKey(input.Period)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Debug("Summary cache read failed", "key", key, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	payments, err := uc.reportRepo.ListPayments(ctx)
	if err != nil {
		return nil, domainerror.NewRevenueError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to load payments",
			err,
		)
	}

	leases, err := uc.reportRepo.ListLeases(ctx)
	if err != nil {
		return nil, domainerror.NewRevenueError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to load leases",
			err,
		)
	}

	refunds, err := uc.reportRepo.ListDepositRefunds(ctx)
	if err != nil {
		return nil, domainerror.NewRevenueError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to load refund records",
			err,
		)
	}

	summary := Aggregate(payments, leases, refunds, input.Period, uc.clock.Now())

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, summary); err != nil {
			slog.Debug("Summary cache write failed", "key", key, "error", err)
		}
	}

	return summary, nil
}

// cacheKey normalizes a period request into a cache key. Degraded requests
// share the all-time key so they also share its cache entry.
func cacheKey(period PeriodRequest) string {
	switch {
	case period.IsAll():
		return "revenue:summary:all"
	case period.Kind == PeriodYear:
		return fmt.Sprintf("revenue:summary:year:%04d", period.Year)
	default:
		return fmt.Sprintf("revenue:summary:month:%04d-%02d", period.Year, period.Month)
	}
}
