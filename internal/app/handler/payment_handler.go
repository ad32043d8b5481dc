package handler

import (
	"net/http"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/payment"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// VerifyRazorpayPayment checks a Razorpay checkout callback signature.
// @Summary Verify Razorpay payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.RazorpayVerifyRequest true "Callback fields"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/payments/razorpay/verify [post]
func (h *APIHandler) VerifyRazorpayPayment(c *gin.Context) {
	if h.Config.Payment.RazorpayKeySecret == "" {
		h.errorResponse(c, http.StatusInternalServerError, "razorpay is not configured")
		return
	}

	var req dto.RazorpayVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "missing payment verification fields")
		return
	}

	verified := payment.VerifyRazorpaySignature(h.Config.Payment.RazorpayKeySecret, req.OrderID, req.PaymentID, req.Signature)
	if !verified {
		c.JSON(http.StatusBadRequest, gin.H{"verified": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

// VerifyStripePayment reports whether a checkout session has been paid.
// @Summary Verify Stripe payment
// @Tags Payments
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/payments/stripe/verify [get]
func (h *APIHandler) VerifyStripePayment(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		h.errorResponse(c, http.StatusBadRequest, "missing session_id")
		return
	}

	status, err := h.StripeClient.VerifySession(c.Request.Context(), sessionID)
	if err != nil {
		logrus.Error("stripe verify failed: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to verify payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paid":   status.Paid,
		"status": status.Status,
	})
}
