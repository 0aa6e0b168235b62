// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentfolio/backend/internal/application/usecase/payment"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
)

// signatureHeader carries the gateway's HMAC signature of the request body.
const signatureHeader = "X-Gateway-Signature"

// WebhookController receives payment gateway notifications. It lives outside
// the authenticated API group; the HMAC signature is the only credential.
type WebhookController struct {
	handleWebhookUseCase *payment.HandleWebhookUseCase
}

// NewWebhookController creates a new webhook controller instance.
func NewWebhookController(handleWebhookUseCase *payment.HandleWebhookUseCase) *WebhookController {
	return &WebhookController{
		handleWebhookUseCase: handleWebhookUseCase,
	}
}

// HandleGatewayEvent handles POST /webhooks/gateway requests.
func (c *WebhookController) HandleGatewayEvent(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read request body",
		})
		return
	}

	err = c.handleWebhookUseCase.Execute(ctx.Request.Context(), payment.HandleWebhookInput{
		Body:      body,
		Signature: ctx.GetHeader(signatureHeader),
	})
	if err != nil {
		var paymentErr *domainerror.PaymentError
		if errors.As(err, &paymentErr) && paymentErr.Code == domainerror.ErrCodeWebhookBadSignature {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: paymentErr.Message,
				Code:  string(paymentErr.Code),
			})
			return
		}
		// Other failures are retryable from the gateway's point of view.
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process event",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Event processed",
	})
}
