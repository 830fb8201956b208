package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quickdrop/models"
	"quickdrop/services/booking"
)

// CheckoutHandler drives payment for a completed draft.
type CheckoutHandler struct {
	Engine *booking.CheckoutEngine
}

// CheckoutDraftHandler validates the draft and settles it with the selected
// payment method. Card payments return a terminal state; peer transfers
// return awaiting_offline_confirmation.
func (h *CheckoutHandler) CheckoutDraftHandler(c *gin.Context) {
	var input struct {
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Engine.Checkout(c.Request.Context(), c.Param("sessionID"), input.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	getLogger(c).Info("checkout attempt finished",
		zap.String("session", c.Param("sessionID")),
		zap.String("state", string(result.State)),
	)
	c.JSON(http.StatusOK, result)
}

// ConfirmOfflineHandler completes a peer-transfer checkout after the customer
// reports the transfer as sent.
func (h *CheckoutHandler) ConfirmOfflineHandler(c *gin.Context) {
	result, err := h.Engine.ConfirmOfflinePayment(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResendNotificationsHandler re-queues the confirmation email and SMS for a
// paid booking.
func (h *CheckoutHandler) ResendNotificationsHandler(c *gin.Context) {
	if err := h.Engine.ResendNotifications(c.Request.Context(), c.Param("bookingID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "confirmation notifications queued"})
}
