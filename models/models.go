package models

import (
	"gorm.io/gorm"
)

// User represents a registered user in the system
type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	IsBlocked bool   `json:"is_blocked"`
	IsAdmin   bool   `json:"is_admin" gorm:"default:false"`

	Listings []Listing `json:"listings,omitempty" gorm:"foreignKey:CreatedByID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}

// Listing type constants
const (
	ListingTypeHotel      = "hotel"
	ListingTypeApartment  = "apartment"
	ListingTypeActivity   = "activity"
	ListingTypeRestaurant = "restaurant"
)

// Listing represents a travel listing (accommodation, activity, etc.)
type Listing struct {
	gorm.Model
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ListingType string   `json:"listing_type"` // hotel, apartment, activity, restaurant
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	CreatedByID uint     `json:"created_by_id"`
	CreatedBy   User     `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	IsActive    bool     `json:"is_active" gorm:"default:true"`
	Reviews     []Review `json:"reviews,omitempty" gorm:"foreignKey:ListingID"`

	AverageRating float64 `json:"average_rating" gorm:"-"`
	ReviewCount   int     `json:"review_count" gorm:"-"`
}

// Review represents a listing review. A user may review a listing only once.
type Review struct {
	gorm.Model
	ListingID  uint   `json:"listing_id" gorm:"uniqueIndex:idx_listing_reviewer"`
	ReviewerID uint   `json:"reviewer_id" gorm:"uniqueIndex:idx_listing_reviewer"`
	Reviewer   User   `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	Rating     int    `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment    string `json:"comment"`
}
