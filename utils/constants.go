package utils

// Application constants
const (
	// Application name
	AppName = "TripStay"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Minimum rating
	MinRating = 1

	// Maximum rating
	MaxRating = 5

	// Currency charged through the payment gateway
	PaymentCurrency = "ETB"
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrUnauthorized       = "Unauthorized access"

	// Validation errors
	ErrInvalidRating = "Rating must be between 1 and 5"
	ErrInvalidPrice  = "Price must be greater than 0"

	// Payment errors (exact boundary wording)
	ErrChapaKeyMissing = "Chapa secret key not configured."
	ErrInitiateFailed  = "Failed to initiate payment."
	ErrVerifyFailed    = "Failed to verify payment."
	ErrBookingNotFound = "Booking not found"
	ErrPaymentNotFound = "Payment not found"
	ErrDuplicateReview = "You have already reviewed this listing"
	ErrListingNotFound = "Listing not found"
	ErrReviewNotFound  = "Review not found"
	ErrRecordNotFound  = "Record not found"
)
