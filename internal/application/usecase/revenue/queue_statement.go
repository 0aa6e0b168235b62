package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// QueueStatementInput represents the input for queueing a monthly statement
// email. Year and Month select the statement month; zero values mean the
// previous calendar month.
type QueueStatementInput struct {
	RecipientEmail string
	RecipientName  string
	Year           int
	Month          int
}

// QueueStatementUseCase computes the summary for a single month and queues a
// statement email with the headline figures. Delivery happens asynchronously
// through the email worker.
type QueueStatementUseCase struct {
	getSummary *GetSummaryUseCase
	emailQueue adapter.EmailQueueRepository
	clock      adapter.Clock
}

// NewQueueStatementUseCase creates a new QueueStatementUseCase instance.
func NewQueueStatementUseCase(
	getSummary *GetSummaryUseCase,
	emailQueue adapter.EmailQueueRepository,
	clock adapter.Clock,
) *QueueStatementUseCase {
	return &QueueStatementUseCase{
		getSummary: getSummary,
		emailQueue: emailQueue,
		clock:      clock,
	}
}

// Execute queues the statement email and returns the queued job.
func (uc *QueueStatementUseCase) Execute(ctx context.Context, input QueueStatementInput) (*entity.EmailJob, error) {
	year, month := input.Year, input.Month
	if year == 0 || month == 0 {
		// Anchor to the first of the month before stepping back; subtracting
		// a month from the 31st would normalize into the current month.
		prev := startOfMonth(entity.DateOnly(uc.clock.Now())).AddDate(0, -1, 0)
		year, month = prev.Year(), int(prev.Month())
	}

	summary, err := uc.getSummary.Execute(ctx, GetSummaryInput{
		Period: PeriodRequest{Kind: PeriodMonth, Year: year, Month: month},
	})
	if err != nil {
		return nil, err
	}

	monthLabel := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	subject := fmt.Sprintf("Your revenue statement for %s", monthLabel)

	job := entity.NewEmailJob(
		entity.TemplateMonthlyStatement,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		map[string]interface{}{
			"month":                monthLabel,
			"cash_total":           summary.Cash.Total.String(),
			"cash_net":             summary.Cash.Net.String(),
			"cash_fees":            summary.Cash.Fees.String(),
			"payment_count":        summary.Cash.PaymentCount,
			"accrual_earned":       summary.Accrual.TotalEarned.String(),
			"occupied_nights":      summary.Accrual.OccupiedNights,
			"outstanding_deposits": summary.Accrual.OutstandingDeposits.String(),
			"upcoming_revenue":     summary.Accrual.UpcomingRevenue.String(),
		},
	)

	if err := uc.emailQueue.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to queue statement email: %w", err)
	}

	return job, nil
}
