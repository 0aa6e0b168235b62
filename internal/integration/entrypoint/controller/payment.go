// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/payment"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles payment management endpoints.
type PaymentController struct {
	recordUseCase   *payment.RecordPaymentUseCase
	listUseCase     *payment.ListPaymentsUseCase
	checkoutUseCase *payment.CreateCheckoutUseCase
	refundUseCase   *payment.IssueRefundUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	recordUseCase *payment.RecordPaymentUseCase,
	listUseCase *payment.ListPaymentsUseCase,
	checkoutUseCase *payment.CreateCheckoutUseCase,
	refundUseCase *payment.IssueRefundUseCase,
) *PaymentController {
	return &PaymentController{
		recordUseCase:   recordUseCase,
		listUseCase:     listUseCase,
		checkoutUseCase: checkoutUseCase,
		refundUseCase:   refundUseCase,
	}
}

// Record handles POST /payments requests for manual entries.
func (c *PaymentController) Record(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePaymentZeroAmount),
		})
		return
	}

	var leaseID *uuid.UUID
	if req.LeaseID != "" {
		id, err := uuid.Parse(req.LeaseID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid lease ID",
				Code:  string(domainerror.ErrCodeLeaseNotFound),
			})
			return
		}
		leaseID = &id
	}

	recorded, err := c.recordUseCase.Execute(ctx.Request.Context(), payment.RecordPaymentInput{
		LeaseID:     leaseID,
		Amount:      dto.MoneyFromRequest(req.Amount),
		Fee:         dto.MoneyFromRequest(req.Fee),
		Type:        entity.ParsePaymentType(req.Type),
		PaidAt:      req.PaidAt,
		Description: req.Description,
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(recorded))
}

// List handles GET /payments requests.
func (c *PaymentController) List(ctx *gin.Context) {
	filter := adapter.PaymentListFilter{}

	if raw := ctx.Query("lease_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid lease ID",
				Code:  string(domainerror.ErrCodeLeaseNotFound),
			})
			return
		}
		filter.LeaseID = &id
	}
	if raw := ctx.Query("status"); raw != "" {
		filter.Status = entity.PaymentStatus(raw)
	}
	if raw := ctx.Query("type"); raw != "" {
		filter.Type = entity.ParsePaymentType(raw)
	}

	payments, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(payments))
}

// CreateCheckout handles POST /payments/checkout requests.
func (c *PaymentController) CreateCheckout(ctx *gin.Context) {
	var req dto.CreateCheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePaymentZeroAmount),
		})
		return
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid lease ID",
			Code:  string(domainerror.ErrCodeLeaseNotFound),
		})
		return
	}

	output, err := c.checkoutUseCase.Execute(ctx.Request.Context(), payment.CreateCheckoutInput{
		LeaseID:     leaseID,
		Amount:      dto.MoneyFromRequest(req.Amount),
		Type:        entity.ParsePaymentType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CheckoutResponse{
		Payment:     dto.ToPaymentResponse(output.Payment),
		CheckoutURL: output.CheckoutURL,
	})
}

// Refund handles POST /payments/:id/refund requests.
func (c *PaymentController) Refund(ctx *gin.Context) {
	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment ID",
			Code:  string(domainerror.ErrCodePaymentNotFound),
		})
		return
	}

	var req dto.IssueRefundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePaymentZeroAmount),
		})
		return
	}

	refund, err := c.refundUseCase.Execute(ctx.Request.Context(), payment.IssueRefundInput{
		PaymentID: paymentID,
		Amount:    dto.MoneyFromRequest(req.Amount),
		Category:  entity.ParseRefundCategory(req.Category),
		Reason:    req.Reason,
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(refund))
}

// handlePaymentError maps payment errors to HTTP responses.
func (c *PaymentController) handlePaymentError(ctx *gin.Context, err error) {
	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		ctx.JSON(statusCodeForPaymentError(paymentErr.Code), dto.ErrorResponse{
			Error: paymentErr.Message,
			Code:  string(paymentErr.Code),
		})
		return
	}

	var leaseErr *domainerror.LeaseError
	if errors.As(err, &leaseErr) {
		ctx.JSON(statusCodeForLeaseError(leaseErr.Code), dto.ErrorResponse{
			Error: leaseErr.Message,
			Code:  string(leaseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForPaymentError maps payment error codes to HTTP status codes.
func statusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentZeroAmount,
		domainerror.ErrCodePaymentNotRefundable,
		domainerror.ErrCodeRefundExceedsPayment:
		return http.StatusBadRequest
	case domainerror.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeWebhookBadSignature:
		return http.StatusUnauthorized
	case domainerror.ErrCodeGatewayUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
