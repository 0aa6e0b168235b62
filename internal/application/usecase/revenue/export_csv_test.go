package revenue

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

func TestWriteCSV(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	leases := []*entity.Lease{
		{
			StartDate:   date(2024, time.January, 15),
			EndDate:     date(2024, time.February, 10),
			MonthlyRent: decimal.RequireFromString("1000.00"),
		},
	}
	payments := []*entity.Payment{
		succeededPayment(123456, 0, entity.PaymentTypeRent, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), nil),
	}

	summary := Aggregate(payments, leases, nil, PeriodRequest{Kind: PeriodAll}, now)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}

	if got := strings.Join(records[0], ","); got != "month,cash,accrual,occupied_nights" {
		t.Errorf("unexpected header %q", got)
	}

	var january []string
	for _, rec := range records {
		if rec[0] == "2024-01" {
			january = rec
		}
	}
	if january == nil {
		t.Fatal("expected a 2024-01 row")
	}

	// Monetary cells are cents divided by 100 with two decimal places.
	if january[1] != "1234.56" {
		t.Errorf("expected cash 1234.56, got %q", january[1])
	}
	if january[2] != "548.39" {
		t.Errorf("expected accrual 548.39, got %q", january[2])
	}
	if january[3] != "17" {
		t.Errorf("expected 17 nights, got %q", january[3])
	}

	var foundTotal bool
	for _, rec := range records {
		if rec[0] == "cash_total" && rec[1] == "1234.56" {
			foundTotal = true
		}
	}
	if !foundTotal {
		t.Error("expected a cash_total summary row of 1234.56")
	}
}
