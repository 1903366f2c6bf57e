package controllers

import (
	"net/http"

	"github.com/dawit-alemu/tripstay/payments"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// PaymentCoordinator is wired in main with the live gateway client and
// configuration. Tests swap in a coordinator with fakes.
var PaymentCoordinator *payments.Coordinator

// InitiatePayment starts a gateway transaction for the caller's booking.
// Responses use the bare payment wire shape: {checkout_url, transaction_id}
// on success, {error} on failure.
func InitiatePayment(c *gin.Context) {
	utils.LogInfo("InitiatePayment called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := idParam(c, "booking_id")
	if !ok {
		return
	}

	result, err := PaymentCoordinator.Initiate(c.Request.Context(), bookingID, user)
	if err != nil {
		writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout_url":   result.CheckoutURL,
		"transaction_id": result.TransactionID,
	})
}

// VerifyPayment re-checks the gateway transaction for the caller's booking
// and reports the (possibly updated) local status.
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := idParam(c, "booking_id")
	if !ok {
		return
	}

	status, err := PaymentCoordinator.Verify(c.Request.Context(), bookingID, user)
	if err != nil {
		writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// writePaymentError maps coordinator errors onto the payment endpoints'
// minimal {error} shape. Nothing beyond the coordinator's message crosses
// the boundary.
func writePaymentError(c *gin.Context, err error) {
	if appErr := utils.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	utils.LogError("Unexpected payment error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
