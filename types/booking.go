package types

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking reserves seats on a single trip. Code is the public identifier
// handed to the passenger; Amount is the fare snapshot taken at creation
// so later route price edits don't change what was charged.
type Booking struct {
	Code       string     `json:"code" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"type:varchar;not null;index"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"-"`
	DeletedAt  *time.Time `json:"-"`
	TripID     uint       `json:"tripId" binding:"required"`
	Name       string     `json:"name" binding:"required,min=2"`
	Email      string     `json:"email" binding:"required,email"`
	Phone      string     `json:"phone"`
	Seats      uint       `json:"seats"`
	Status     string     `json:"status" gorm:"default:'pending'"`
	Amount     float64    `json:"amount"`
	PaymentID  string     `json:"-"`
}
