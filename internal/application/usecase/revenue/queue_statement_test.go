package revenue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type emptyReportRepository struct{}

func (emptyReportRepository) ListPayments(context.Context) ([]*entity.Payment, error) {
	return nil, nil
}

func (emptyReportRepository) ListDepositRefunds(context.Context) ([]*entity.Payment, error) {
	return nil, nil
}

func (emptyReportRepository) ListLeases(context.Context) ([]*entity.Lease, error) {
	return nil, nil
}

type captureEmailQueue struct {
	jobs []*entity.EmailJob
}

func (q *captureEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *captureEmailQueue) GetPendingJobs(context.Context, int) ([]*entity.EmailJob, error) {
	return nil, nil
}

func (q *captureEmailQueue) Update(context.Context, *entity.EmailJob) error {
	return nil
}

func (q *captureEmailQueue) GetByID(context.Context, uuid.UUID) (*entity.EmailJob, error) {
	return nil, nil
}

func TestQueueStatementUseCase_DefaultMonth(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"mid month", time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC), "June 2026"},
		{"month end", time.Date(2026, time.July, 31, 23, 59, 0, 0, time.UTC), "June 2026"},
		{"march end after short february", time.Date(2026, time.March, 31, 8, 0, 0, 0, time.UTC), "February 2026"},
		{"january rolls into prior year", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), "December 2025"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clock := fixedClock{now: tc.now}
			queue := &captureEmailQueue{}
			getSummary := NewGetSummaryUseCase(emptyReportRepository{}, nil, clock)
			uc := NewQueueStatementUseCase(getSummary, queue, clock)

			job, err := uc.Execute(context.Background(), QueueStatementInput{
				RecipientEmail: "owner@example.com",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := job.TemplateData["month"]; got != tc.want {
				t.Errorf("expected statement month %q, got %q", tc.want, got)
			}
			if len(queue.jobs) != 1 {
				t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
			}
		})
	}
}

func TestQueueStatementUseCase_ExplicitMonth(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)}
	queue := &captureEmailQueue{}
	getSummary := NewGetSummaryUseCase(emptyReportRepository{}, nil, clock)
	uc := NewQueueStatementUseCase(getSummary, queue, clock)

	job, err := uc.Execute(context.Background(), QueueStatementInput{
		RecipientEmail: "owner@example.com",
		Year:           2026,
		Month:          2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := job.TemplateData["month"]; got != "February 2026" {
		t.Errorf("expected statement month %q, got %q", "February 2026", got)
	}
	if job.Subject != "Your revenue statement for February 2026" {
		t.Errorf("unexpected subject %q", job.Subject)
	}
}
