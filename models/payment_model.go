package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment rows are append-only: a revert is a new row with Type=Reverted,
// never an update or delete of the original.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`

	Date   time.Time `gorm:"type:date;not null" json:"date"`
	Amount float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Method string    `gorm:"size:10;not null" json:"method"` // Cash | Card | UPI | Bank
	Type   string    `gorm:"size:10;not null;default:'Received'" json:"type"`
	Notes  *string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	PaymentReceived = "Received"
	PaymentReverted = "Reverted"

	MethodCash = "Cash"
	MethodCard = "Card"
	MethodUPI  = "UPI"
	MethodBank = "Bank"
)
