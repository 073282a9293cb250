package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense rows follow the same append-only convention as payments: a revert
// is a counter-entry with Type=Reverted. BookingRef carries the human booking
// id; a nil ref means a general/overhead expense that never rolls up.
type Expense struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingRef *string   `gorm:"size:30;index" json:"booking_id"`

	ExpenseDate   time.Time `gorm:"type:date;not null" json:"expense_date"`
	Category      string    `gorm:"size:100;not null" json:"category"` // category name, not id
	Vendor        string    `gorm:"size:255;not null" json:"vendor"`
	Amount        float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:10;not null" json:"payment_method"`
	Type          string    `gorm:"size:10;not null;default:'Paid'" json:"type"` // Paid | Reverted
	Notes         *string   `gorm:"type:text" json:"notes"`

	ManpowerCount *int     `json:"manpower_count"`
	RatePerPerson *float64 `gorm:"type:numeric(12,2)" json:"rate_per_person"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	ExpensePaid     = "Paid"
	ExpenseReverted = "Reverted"
)
