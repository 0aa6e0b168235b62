package revenue

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// WriteCSV renders a summary as the export consumed by spreadsheets: one row
// per month with cash, accrual and occupied nights, followed by the summary
// totals. Monetary cells are currency units with two decimal places.
func WriteCSV(w io.Writer, summary *Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"month", "cash", "accrual", "occupied_nights"}); err != nil {
		return domainerror.NewRevenueError(domainerror.ErrCodeReportEncodeFailed, "failed to write csv header", err)
	}

	cash := make(map[valueobject.MonthKey]valueobject.Money, len(summary.MonthlyCash))
	for _, point := range summary.MonthlyCash {
		cash[point.Month] = point.Amount
	}
	accrual := make(map[valueobject.MonthKey]valueobject.Money, len(summary.MonthlyAccrual))
	for _, point := range summary.MonthlyAccrual {
		accrual[point.Month] = point.Amount
	}
	nights := make(map[valueobject.MonthKey]int, len(summary.MonthlyOccupancy))
	for _, point := range summary.MonthlyOccupancy {
		nights[point.Month] = point.Nights
	}

	for _, month := range unionMonths(cash, accrual, nights) {
		row := []string{
			month.String(),
			cash[month].String(),
			accrual[month].String(),
			fmt.Sprintf("%d", nights[month]),
		}
		if err := cw.Write(row); err != nil {
			return domainerror.NewRevenueError(domainerror.ErrCodeReportEncodeFailed, "failed to write csv row", err)
		}
	}

	totals := [][]string{
		{"", "", "", ""},
		{"cash_total", summary.Cash.Total.String(), "", ""},
		{"cash_net", summary.Cash.Net.String(), "", ""},
		{"cash_refunds", summary.Cash.Refunds.String(), "", ""},
		{"accrual_total", summary.Accrual.TotalEarned.String(), "", ""},
		{"occupied_nights", fmt.Sprintf("%d", summary.Accrual.OccupiedNights), "", ""},
		{"outstanding_deposits", summary.Accrual.OutstandingDeposits.String(), "", ""},
		{"released_deposits", summary.Accrual.ReleasedDeposits.String(), "", ""},
		{"upcoming_revenue", summary.Accrual.UpcomingRevenue.String(), "", ""},
	}
	for _, row := range totals {
		if err := cw.Write(row); err != nil {
			return domainerror.NewRevenueError(domainerror.ErrCodeReportEncodeFailed, "failed to write csv totals", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return domainerror.NewRevenueError(domainerror.ErrCodeReportEncodeFailed, "failed to flush csv", err)
	}
	return nil
}

// unionMonths merges the month keys of all three timelines into one sorted
// list.
func unionMonths(cash, accrual map[valueobject.MonthKey]valueobject.Money, nights map[valueobject.MonthKey]int) []valueobject.MonthKey {
	seen := make(map[valueobject.MonthKey]struct{})
	for month := range cash {
		seen[month] = struct{}{}
	}
	for month := range accrual {
		seen[month] = struct{}{}
	}
	for month := range nights {
		seen[month] = struct{}{}
	}

	months := make([]valueobject.MonthKey, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}
