package utils

import (
	"html"
	"regexp"
	"time"

	"github.com/dawit-alemu/tripstay/models"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	htmlTagRegex  = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeString escapes HTML special characters and strips tags
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	return htmlTagRegex.ReplaceAllString(sanitized, "")
}

// ValidateUsername checks the username format
func ValidateUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// ValidateEmail checks the email format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateRating checks the review rating range
func ValidateRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ValidateListingType checks the listing type against the known set
func ValidateListingType(listingType string) bool {
	switch listingType {
	case models.ListingTypeHotel, models.ListingTypeApartment,
		models.ListingTypeActivity, models.ListingTypeRestaurant:
		return true
	}
	return false
}

// ValidateBookingDates checks that check-out follows check-in and that
// check-in is not in the past.
func ValidateBookingDates(checkIn, checkOut time.Time) (bool, string) {
	if !checkOut.After(checkIn) {
		return false, "Check-out date must be after check-in date"
	}
	today := time.Now().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return false, "Check-in date cannot be in the past"
	}
	return true, ""
}
