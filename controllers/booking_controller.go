package controllers

import (
	"time"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/policy"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// BookingRequest represents the booking creation payload
type BookingRequest struct {
	ListingID       uint    `json:"listing_id" binding:"required"`
	CheckInDate     string  `json:"check_in_date" binding:"required"`
	CheckOutDate    string  `json:"check_out_date" binding:"required"`
	NumberOfGuests  int     `json:"number_of_guests" binding:"required,min=1"`
	TotalPrice      float64 `json:"total_price" binding:"required,min=0"`
	SpecialRequests string  `json:"special_requests"`
}

// BookingUpdateRequest represents a partial booking update payload
type BookingUpdateRequest struct {
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	NumberOfGuests  *int    `json:"number_of_guests"`
	SpecialRequests *string `json:"special_requests"`
	Status          *string `json:"status"`
}

const bookingDateLayout = "2006-01-02"

// ListBookings returns the caller's bookings, optionally filtered by
// status and listing. Other users' bookings are never visible.
func ListBookings(c *gin.Context) {
	utils.LogInfo("ListBookings called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Booking{}).Where("user_id = ?", user.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if listingID := c.Query("listing"); listingID != "" {
		query = query.Where("listing_id = ?", listingID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count bookings for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}
	pagination.SetTotal(total)

	var bookings []models.Booking
	if err := query.Preload("Listing").
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}
	utils.LogDebug("Found %d bookings for user %d", len(bookings), user.ID)

	utils.SendPaginatedResponse(c, "Bookings retrieved successfully", bookings, pagination)
}

// GetBooking returns one of the caller's bookings. A foreign booking id
// yields 404, not 403, so ids cannot be probed.
func GetBooking(c *gin.Context) {
	utils.LogInfo("GetBooking called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Listing").First(&booking, bookingID).Error; err != nil {
		utils.LogError("Booking not found: %d", bookingID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}
	if !policy.CanAccessBooking(user, booking) {
		utils.LogError("User %d attempted to read booking %d owned by %d", user.ID, booking.ID, booking.UserID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}

	utils.Success(c, "Booking retrieved successfully", booking)
}

// CreateBooking creates a booking for the caller
func CreateBooking(c *gin.Context) {
	utils.LogInfo("CreateBooking called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid booking input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	checkIn, err := time.Parse(bookingDateLayout, req.CheckInDate)
	if err != nil {
		utils.BadRequest(c, "Invalid check_in_date", "expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(bookingDateLayout, req.CheckOutDate)
	if err != nil {
		utils.BadRequest(c, "Invalid check_out_date", "expected YYYY-MM-DD")
		return
	}
	if ok, msg := utils.ValidateBookingDates(checkIn, checkOut); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	var listing models.Listing
	if err := config.DB.Where("id = ? AND is_active = ?", req.ListingID, true).First(&listing).Error; err != nil {
		utils.LogError("Listing not found for booking: %d", req.ListingID)
		utils.NotFound(c, utils.ErrListingNotFound)
		return
	}

	booking := models.Booking{
		ListingID:       listing.ID,
		UserID:          user.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      req.TotalPrice,
		Status:          models.BookingStatusPending,
		SpecialRequests: utils.SanitizeString(req.SpecialRequests),
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		utils.LogError("Failed to create booking: %v", err)
		utils.InternalServerError(c, "Failed to create booking", nil)
		return
	}
	utils.LogInfo("Booking %d created for listing %d by user %d", booking.ID, listing.ID, user.ID)

	utils.Created(c, "Booking created successfully", booking)
}

// UpdateBooking updates one of the caller's bookings
func UpdateBooking(c *gin.Context) {
	utils.LogInfo("UpdateBooking called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		utils.LogError("Booking not found: %d", bookingID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}
	if !policy.CanAccessBooking(user, booking) {
		utils.LogError("User %d attempted to update booking %d owned by %d", user.ID, booking.ID, booking.UserID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}

	var req BookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid booking update input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	checkIn := booking.CheckInDate
	checkOut := booking.CheckOutDate
	if req.CheckInDate != nil {
		parsed, err := time.Parse(bookingDateLayout, *req.CheckInDate)
		if err != nil {
			utils.BadRequest(c, "Invalid check_in_date", "expected YYYY-MM-DD")
			return
		}
		checkIn = parsed
	}
	if req.CheckOutDate != nil {
		parsed, err := time.Parse(bookingDateLayout, *req.CheckOutDate)
		if err != nil {
			utils.BadRequest(c, "Invalid check_out_date", "expected YYYY-MM-DD")
			return
		}
		checkOut = parsed
	}
	if req.CheckInDate != nil || req.CheckOutDate != nil {
		if ok, msg := utils.ValidateBookingDates(checkIn, checkOut); !ok {
			utils.BadRequest(c, msg, nil)
			return
		}
		booking.CheckInDate = checkIn
		booking.CheckOutDate = checkOut
	}
	if req.NumberOfGuests != nil {
		if *req.NumberOfGuests < 1 {
			utils.BadRequest(c, "number_of_guests must be at least 1", nil)
			return
		}
		booking.NumberOfGuests = *req.NumberOfGuests
	}
	if req.SpecialRequests != nil {
		booking.SpecialRequests = utils.SanitizeString(*req.SpecialRequests)
	}
	if req.Status != nil {
		switch *req.Status {
		case models.BookingStatusPending, models.BookingStatusConfirmed,
			models.BookingStatusCancelled, models.BookingStatusCompleted:
			booking.Status = *req.Status
		default:
			utils.BadRequest(c, "Invalid status", "status must be one of pending, confirmed, cancelled, completed")
			return
		}
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.LogError("Failed to update booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to update booking", nil)
		return
	}
	utils.LogInfo("Booking %d updated by user %d", booking.ID, user.ID)

	utils.Success(c, "Booking updated successfully", booking)
}

// CancelBooking cancels one of the caller's bookings. The row is kept with
// status cancelled rather than deleted, matching the listing soft-delete
// behavior.
func CancelBooking(c *gin.Context) {
	utils.LogInfo("CancelBooking called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		utils.LogError("Booking not found: %d", bookingID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}
	if !policy.CanAccessBooking(user, booking) {
		utils.LogError("User %d attempted to cancel booking %d owned by %d", user.ID, booking.ID, booking.UserID)
		utils.NotFound(c, utils.ErrBookingNotFound)
		return
	}

	if err := config.DB.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
		utils.LogError("Failed to cancel booking %d: %v", booking.ID, err)
		utils.InternalServerError(c, "Failed to cancel booking", nil)
		return
	}
	utils.LogInfo("Booking %d cancelled by user %d", booking.ID, user.ID)

	utils.Success(c, "Booking cancelled successfully", gin.H{"id": booking.ID, "status": models.BookingStatusCancelled})
}
