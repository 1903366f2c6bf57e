package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/gateway"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/utils"
	"gorm.io/gorm"
)

// Coordinator orchestrates the two-phase payment handshake against the
// gateway and maps gateway responses onto the local Payment record. All
// dependencies are injected so tests can run without network or a real
// credential.
type Coordinator struct {
	DB      *gorm.DB
	Gateway gateway.PaymentGateway
	Config  *config.Config
	Mailer  utils.Mailer
}

// NewCoordinator creates a payment coordinator
func NewCoordinator(db *gorm.DB, gw gateway.PaymentGateway, cfg *config.Config, mailer utils.Mailer) *Coordinator {
	return &Coordinator{
		DB:      db,
		Gateway: gw,
		Config:  cfg,
		Mailer:  mailer,
	}
}

// InitiateResult is returned to the caller after a successful initiate
type InitiateResult struct {
	CheckoutURL   string `json:"checkout_url"`
	TransactionID string `json:"transaction_id"`
}

// Initiate starts a gateway transaction for the caller's booking. The local
// Payment row is get-or-created keyed on the booking: a repeat call never
// overwrites the first call's amount or transaction id.
func (co *Coordinator) Initiate(ctx context.Context, bookingID uint, user models.User) (*InitiateResult, error) {
	utils.LogInfo("Payment initiate requested - booking ID: %d, user ID: %d", bookingID, user.ID)

	var booking models.Booking
	if err := co.DB.Where("id = ? AND user_id = ?", bookingID, user.ID).First(&booking).Error; err != nil {
		utils.LogError("Booking not found for initiate - booking ID: %d, user ID: %d", bookingID, user.ID)
		return nil, utils.NotFoundError(utils.ErrBookingNotFound, err)
	}

	if co.Config.ChapaSecretKey == "" {
		utils.LogError("Chapa secret key missing on initiate - booking ID: %d", booking.ID)
		return nil, utils.ConfigurationError(utils.ErrChapaKeyMissing)
	}

	req := gateway.InitializeRequest{
		Amount:    strconv.FormatFloat(booking.TotalPrice, 'f', 2, 64),
		Currency:  utils.PaymentCurrency,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		TxRef:     fmt.Sprintf("booking_%d_%d", booking.ID, user.ID),
		ReturnURL: fmt.Sprintf("%s/v1/payments/verify/%d/", co.Config.AppBaseURL, booking.ID),
	}

	res, err := co.Gateway.Initialize(ctx, req)
	if err != nil {
		utils.LogError("Gateway initialize failed - booking ID: %d: %v", booking.ID, err)
		return nil, utils.GatewayError(utils.ErrInitiateFailed, err)
	}
	utils.LogInfo("Gateway initialize succeeded - booking ID: %d, tx_ref: %s", booking.ID, res.TxRef)

	payment := models.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		TransactionID: res.TxRef,
		Status:        models.PaymentStatusPending,
	}
	// First call wins. A concurrent initiate can slip past the read inside
	// FirstOrCreate; the unique index on booking_id rejects the second
	// insert, and the retry read picks up the surviving row.
	err = co.DB.Where("booking_id = ?", booking.ID).
		Attrs(payment).
		FirstOrCreate(&payment).Error
	if err != nil {
		if err2 := co.DB.Where("booking_id = ?", booking.ID).First(&payment).Error; err2 != nil {
			utils.LogError("Failed to record payment - booking ID: %d: %v", booking.ID, err)
			return nil, utils.NewAppError(500, "Failed to record payment", err)
		}
	}
	utils.LogInfo("Payment recorded - booking ID: %d, payment ID: %d, status: %s",
		booking.ID, payment.ID, payment.Status)

	return &InitiateResult{
		CheckoutURL:   res.CheckoutURL,
		TransactionID: res.TxRef,
	}, nil
}

// Verify re-queries the gateway for the stored transaction and applies the
// reported status to the local Payment. Terminal payments are re-reported
// without another gateway round trip.
func (co *Coordinator) Verify(ctx context.Context, bookingID uint, user models.User) (string, error) {
	utils.LogInfo("Payment verify requested - booking ID: %d, user ID: %d", bookingID, user.ID)

	var booking models.Booking
	if err := co.DB.Where("id = ? AND user_id = ?", bookingID, user.ID).First(&booking).Error; err != nil {
		utils.LogError("Booking not found for verify - booking ID: %d, user ID: %d", bookingID, user.ID)
		return "", utils.NotFoundError(utils.ErrBookingNotFound, err)
	}

	var payment models.Payment
	if err := co.DB.Where("booking_id = ?", booking.ID).First(&payment).Error; err != nil {
		utils.LogError("Payment not found for verify - booking ID: %d", booking.ID)
		return "", utils.NotFoundError(utils.ErrPaymentNotFound, err)
	}

	if co.Config.ChapaSecretKey == "" {
		utils.LogError("Chapa secret key missing on verify - booking ID: %d", booking.ID)
		return "", utils.ConfigurationError(utils.ErrChapaKeyMissing)
	}

	if payment.Terminal() {
		utils.LogInfo("Payment already terminal - booking ID: %d, status: %s", booking.ID, payment.Status)
		return payment.Status, nil
	}

	status, err := co.Gateway.Verify(ctx, payment.TransactionID)
	if err != nil {
		utils.LogError("Gateway verify failed - booking ID: %d: %v", booking.ID, err)
		return "", utils.GatewayError(utils.ErrVerifyFailed, err)
	}
	utils.LogInfo("Gateway reported status %q - booking ID: %d", status, booking.ID)

	switch status {
	case "success":
		payment.Status = models.PaymentStatusCompleted
		if err := co.DB.Save(&payment).Error; err != nil {
			return "", utils.NewAppError(500, "Failed to update payment", err)
		}
		co.sendConfirmation(user, booking, payment)
	case "failed":
		payment.Status = models.PaymentStatusFailed
		if err := co.DB.Save(&payment).Error; err != nil {
			return "", utils.NewAppError(500, "Failed to update payment", err)
		}
	default:
		// Unrecognized gateway vocabulary; leave the stored status alone.
		utils.LogError("Unrecognized gateway status %q - booking ID: %d", status, booking.ID)
	}

	return payment.Status, nil
}

func (co *Coordinator) sendConfirmation(user models.User, booking models.Booking, payment models.Payment) {
	if co.Mailer == nil {
		return
	}
	body := utils.PaymentConfirmationBody(user.FirstName, booking.ID, payment.Amount)
	if err := co.Mailer.Send(user.Email, "Your TripStay payment is confirmed", body); err != nil {
		utils.LogError("Failed to send payment confirmation - booking ID: %d: %v", booking.ID, err)
	}
}
