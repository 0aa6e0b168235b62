// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/usecase/lease"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
)

// LeaseController handles lease management endpoints.
type LeaseController struct {
	createUseCase *lease.CreateLeaseUseCase
	listUseCase   *lease.ListLeasesUseCase
	getUseCase    *lease.GetLeaseUseCase
	updateUseCase *lease.UpdateLeaseUseCase
	deleteUseCase *lease.DeleteLeaseUseCase
}

// NewLeaseController creates a new lease controller instance.
func NewLeaseController(
	createUseCase *lease.CreateLeaseUseCase,
	listUseCase *lease.ListLeasesUseCase,
	getUseCase *lease.GetLeaseUseCase,
	updateUseCase *lease.UpdateLeaseUseCase,
	deleteUseCase *lease.DeleteLeaseUseCase,
) *LeaseController {
	return &LeaseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /leases requests.
func (c *LeaseController) Create(ctx *gin.Context) {
	input, ok := c.bindLeaseInput(ctx)
	if !ok {
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLeaseResponse(created))
}

// List handles GET /leases requests.
func (c *LeaseController) List(ctx *gin.Context) {
	leases, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaseListResponse(leases))
}

// Get handles GET /leases/:id requests.
func (c *LeaseController) Get(ctx *gin.Context) {
	id, ok := c.parseLeaseID(ctx)
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaseResponse(found))
}

// Update handles PUT /leases/:id requests.
func (c *LeaseController) Update(ctx *gin.Context) {
	id, ok := c.parseLeaseID(ctx)
	if !ok {
		return
	}

	input, ok := c.bindLeaseInput(ctx)
	if !ok {
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), lease.UpdateLeaseInput{
		ID:            id,
		TenantName:    input.TenantName,
		UnitLabel:     input.UnitLabel,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		MonthlyRent:   input.MonthlyRent,
		DepositAmount: input.DepositAmount,
		Notes:         input.Notes,
	})
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaseResponse(updated))
}

// Delete handles DELETE /leases/:id requests.
func (c *LeaseController) Delete(ctx *gin.Context) {
	id, ok := c.parseLeaseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Lease deleted",
	})
}

// bindLeaseInput decodes and validates the shared create/update body.
func (c *LeaseController) bindLeaseInput(ctx *gin.Context) (*lease.CreateLeaseInput, bool) {
	var req dto.LeaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeLeaseInvalidDates),
		})
		return nil, false
	}

	start, end, err := req.ParseDates()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Dates must use the YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeLeaseInvalidDates),
		})
		return nil, false
	}

	return &lease.CreateLeaseInput{
		TenantName:    req.TenantName,
		UnitLabel:     req.UnitLabel,
		StartDate:     start,
		EndDate:       end,
		MonthlyRent:   req.MonthlyRent,
		DepositAmount: req.DepositAmount,
		Notes:         req.Notes,
	}, true
}

func (c *LeaseController) parseLeaseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid lease ID",
			Code:  string(domainerror.ErrCodeLeaseNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleLeaseError maps lease errors to HTTP responses.
func (c *LeaseController) handleLeaseError(ctx *gin.Context, err error) {
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

// statusCodeForLeaseError maps lease error codes to HTTP status codes.
func statusCodeForLeaseError(code domainerror.LeaseErrorCode) int {
	switch code {
	case domainerror.ErrCodeLeaseInvalidDates,
		domainerror.ErrCodeLeaseNegativeRent,
		domainerror.ErrCodeLeaseNegativeDeposit:
		return http.StatusBadRequest
	case domainerror.ErrCodeLeaseNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
