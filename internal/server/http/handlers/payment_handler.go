package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attesto/attesto/internal/adapter/payment"
	domainErrors "github.com/attesto/attesto/internal/domain/errors"
)

// PaymentHandler receives payment gateway webhooks.
type PaymentHandler struct {
	facade PaymentFacade
	secret string
	logger *slog.Logger
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade, secret string, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{facade: facade, secret: secret, logger: logger}
}

// Webhook handles POST /api/payments/webhook. The signature is verified
// before any state is touched; a replayed event acknowledges with 200 without
// changing anything, so the gateway stops retrying.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	signature := c.GetHeader(payment.SignatureHeader)
	if err := payment.VerifySignature(h.secret, body, signature); err != nil {
		h.logger.Warn("webhook signature rejected")
		c.Status(http.StatusBadRequest)
		return
	}

	event, err := payment.ParseEvent(body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ConfirmPayment(c.Request.Context(), event.SessionID, event.ConfirmationID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrPreconditionNotMet), errors.Is(err, domainErrors.ErrConflict):
			c.Status(http.StatusConflict)
		default:
			// 5xx tells the gateway to retry later.
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
