package models

import (
	"time"
)

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment holds gateway payment state for a booking. Exactly one payment
// exists per booking; the unique index on BookingID enforces this even when
// two initiate calls race.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	BookingID     uint      `json:"booking_id" gorm:"uniqueIndex;not null"`
	Booking       Booking   `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status" gorm:"default:'pending'"` // pending, completed, failed
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Terminal reports whether the payment has reached a final state.
func (p *Payment) Terminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}
