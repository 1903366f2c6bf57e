package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a reservation of a listing by a user. Bookings are
// visible and mutable only to the user who created them.
type Booking struct {
	gorm.Model
	ListingID       uint      `json:"listing_id"`
	Listing         Listing   `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	UserID          uint      `json:"user_id"`
	User            User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	NumberOfGuests  int       `json:"number_of_guests" gorm:"default:1;check:number_of_guests >= 1"`
	TotalPrice      float64   `json:"total_price" gorm:"check:total_price >= 0"`
	Status          string    `json:"status" gorm:"default:'pending'"`
	SpecialRequests string    `json:"special_requests"`
}

// DurationDays returns the length of the stay in days.
func (b *Booking) DurationDays() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
