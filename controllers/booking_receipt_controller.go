package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/policy"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadBookingReceipt generates and returns a PDF receipt for one of
// the caller's bookings.
func DownloadBookingReceipt(c *gin.Context) {
	utils.LogInfo("DownloadBookingReceipt called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Listing").Preload("User").First(&booking, bookingID).Error; err != nil {
		utils.LogError("Booking not found for receipt: %d", bookingID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}
	if !policy.CanAccessBooking(user, booking) {
		utils.LogError("User %d attempted receipt for booking %d owned by %d", user.ID, booking.ID, booking.UserID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}

	var payment models.Payment
	paymentStatus := "not initiated"
	if err := config.DB.Where("booking_id = ?", booking.ID).First(&payment).Error; err == nil {
		paymentStatus = payment.Status
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "TripStay")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Bole Road, Addis Ababa")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@tripstay.example")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "BOOKING RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Booking ID: "+strconv.Itoa(int(booking.ID)))
	pdf.Cell(80, 8, "Booked: "+booking.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Status: "+booking.Status)
	pdf.Cell(80, 8, "Payment: "+paymentStatus)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Guest:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, booking.User.FirstName+" "+booking.User.LastName)
	pdf.Ln(6)
	pdf.Cell(100, 8, booking.User.Email)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Stay:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, booking.Listing.Title+" ("+booking.Listing.Location+")")
	pdf.Ln(6)
	pdf.Cell(100, 8, "Check-in: "+booking.CheckInDate.Format("2006-01-02"))
	pdf.Ln(6)
	pdf.Cell(100, 8, "Check-out: "+booking.CheckOutDate.Format("2006-01-02"))
	pdf.Ln(6)
	pdf.Cell(100, 8, fmt.Sprintf("Guests: %d, Nights: %d", booking.NumberOfGuests, booking.DurationDays()))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f %s", booking.TotalPrice, utils.PaymentCurrency), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for booking with TripStay!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render receipt PDF for booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}
	utils.LogInfo("Receipt generated for booking %d", booking.ID)

	c.Header("Content-Disposition", "attachment; filename=receipt.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
