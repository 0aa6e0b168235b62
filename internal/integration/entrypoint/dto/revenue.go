// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"strconv"
	"strings"

	"github.com/rentfolio/backend/internal/application/usecase/revenue"
)

// ParsePeriod maps the period query parameter to a period request.
// Accepted shapes are "all" (or empty), "YYYY" and "YYYY-MM". Anything else
// maps to the all-time request; a bad query never fails a report.
func ParsePeriod(raw string) revenue.PeriodRequest {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "all" {
		return revenue.PeriodRequest{Kind: revenue.PeriodAll}
	}

	if year, month, ok := splitYearMonth(raw); ok {
		return revenue.PeriodRequest{Kind: revenue.PeriodMonth, Year: year, Month: month}
	}

	if year, err := strconv.Atoi(raw); err == nil && len(raw) == 4 && year > 0 {
		return revenue.PeriodRequest{Kind: revenue.PeriodYear, Year: year}
	}

	return revenue.PeriodRequest{Kind: revenue.PeriodAll}
}

func splitYearMonth(raw string) (year, month int, ok bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// QueueStatementRequest represents the request body for queueing a monthly
// statement email. Year and month default to the previous calendar month.
type QueueStatementRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	RecipientName  string `json:"recipient_name"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`
}

// QueueStatementResponse represents the response for a queued statement.
type QueueStatementResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Subject string `json:"subject"`
}
