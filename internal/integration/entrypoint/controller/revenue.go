// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
)

// RevenueController handles revenue reporting endpoints.
type RevenueController struct {
	getSummaryUseCase     *revenue.GetSummaryUseCase
	queueStatementUseCase *revenue.QueueStatementUseCase
}

// NewRevenueController creates a new revenue controller instance.
func NewRevenueController(
	getSummaryUseCase *revenue.GetSummaryUseCase,
	queueStatementUseCase *revenue.QueueStatementUseCase,
) *RevenueController {
	return &RevenueController{
		getSummaryUseCase:     getSummaryUseCase,
		queueStatementUseCase: queueStatementUseCase,
	}
}

// Summary handles GET /revenue/summary requests. The period query parameter
// scopes the accrual totals; a malformed period falls back to all time.
func (c *RevenueController) Summary(ctx *gin.Context) {
	period := dto.ParsePeriod(ctx.Query("period"))

	summary, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), revenue.GetSummaryInput{
		Period: period,
	})
	if err != nil {
		c.handleRevenueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// Export handles GET /revenue/export requests, streaming the summary as CSV.
func (c *RevenueController) Export(ctx *gin.Context) {
	period := dto.ParsePeriod(ctx.Query("period"))

	summary, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), revenue.GetSummaryInput{
		Period: period,
	})
	if err != nil {
		c.handleRevenueError(ctx, err)
		return
	}

	filename := fmt.Sprintf("revenue-%s.csv", time.Now().UTC().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := revenue.WriteCSV(ctx.Writer, summary); err != nil {
		// Headers are already sent; nothing more we can report to the client.
		_ = ctx.Error(err)
	}
}

// QueueStatement handles POST /revenue/statements requests.
func (c *RevenueController) QueueStatement(ctx *gin.Context) {
	var req dto.QueueStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	job, err := c.queueStatementUseCase.Execute(ctx.Request.Context(), revenue.QueueStatementInput{
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
		Year:           req.Year,
		Month:          req.Month,
	})
	if err != nil {
		c.handleRevenueError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.QueueStatementResponse{
		JobID:   job.ID.String(),
		Status:  string(job.Status),
		Subject: job.Subject,
	})
}

// handleRevenueError maps revenue report errors to HTTP responses.
func (c *RevenueController) handleRevenueError(ctx *gin.Context, err error) {
	var revenueErr *domainerror.RevenueError
	if errors.As(err, &revenueErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: revenueErr.Message,
			Code:  string(revenueErr.Code),
		})
		return
	}

	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
