// Package policy holds the per-resource authorization rules. Every
// controller applies the relevant check before acting so ownership is
// enforced in one place instead of inside individual query filters.
package policy

import (
	"github.com/dawit-alemu/tripstay/models"
)

// CanModifyListing reports whether the user may update or deactivate the
// listing. Listings are publicly readable.
func CanModifyListing(user models.User, listing models.Listing) bool {
	return listing.CreatedByID == user.ID
}

// CanModifyReview reports whether the user may update or delete the review.
// Reviews are publicly readable.
func CanModifyReview(user models.User, review models.Review) bool {
	return review.ReviewerID == user.ID
}

// CanAccessBooking reports whether the user may see or mutate the booking.
// Bookings are owner-only for both read and write, including payment
// initiation and verification.
func CanAccessBooking(user models.User, booking models.Booking) bool {
	return booking.UserID == user.ID
}
