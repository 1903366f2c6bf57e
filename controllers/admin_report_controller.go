package controllers

import (
	"math"
	"time"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// BookingsReportSummary aggregates booking activity for a period
type BookingsReportSummary struct {
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalGuests   int     `json:"total_guests"`
	UniqueUsers   int     `json:"unique_users"`
	Cancelled     int     `json:"cancelled"`
}

// reportWindow resolves the requested period into a start/end range
func reportWindow(period string) (time.Time, time.Time, bool) {
	now := time.Now()
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1), true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return end.AddDate(0, 0, -7), end, true
	case "month":
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return end.AddDate(0, -1, 0), end, true
	}
	return time.Time{}, time.Time{}, false
}

func buildBookingsReport(period string) ([]models.Booking, BookingsReportSummary, error) {
	start, end, ok := reportWindow(period)
	if !ok {
		return nil, BookingsReportSummary{}, utils.ValidationError("Period must be day, week, or month", nil)
	}

	var bookings []models.Booking
	err := config.DB.Where("created_at >= ? AND created_at < ?", start, end).
		Preload("User").
		Preload("Listing").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, BookingsReportSummary{}, err
	}

	var summary BookingsReportSummary
	userSet := make(map[uint]bool)
	for _, booking := range bookings {
		summary.TotalBookings++
		summary.TotalGuests += booking.NumberOfGuests
		userSet[booking.UserID] = true
		switch booking.Status {
		case models.BookingStatusConfirmed, models.BookingStatusCompleted:
			summary.TotalRevenue += booking.TotalPrice
		case models.BookingStatusCancelled:
			summary.Cancelled++
		}
	}
	summary.UniqueUsers = len(userSet)
	summary.TotalRevenue = math.Round(summary.TotalRevenue*100) / 100

	return bookings, summary, nil
}

// GetBookingsReport returns the booking activity summary for a period.
// Admin only.
func GetBookingsReport(c *gin.Context) {
	utils.LogInfo("GetBookingsReport called")

	period := c.DefaultQuery("period", "day")
	bookings, summary, err := buildBookingsReport(period)
	if err != nil {
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.LogError("Failed to build bookings report: %v", err)
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}
	utils.LogDebug("Report for period %q covers %d bookings", period, len(bookings))

	utils.Success(c, "Report generated successfully", gin.H{
		"period":   period,
		"summary":  summary,
		"bookings": bookings,
	})
}
