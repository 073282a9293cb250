package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID string    `gorm:"size:30;not null;unique" json:"booking_id"` // human id e.g. HG/25-26/001

	ClientName string `gorm:"size:255;not null" json:"client_name"`
	Contact    string `gorm:"size:50;not null" json:"contact"`
	EventType  string `gorm:"size:100;default:'Unspecified'" json:"event_type"`
	Guests     int    `gorm:"default:0" json:"guests"`
	Shift      string `gorm:"size:10;not null;default:'Night'" json:"shift"` // Day | Night

	EventDate time.Time `gorm:"type:date;not null" json:"event_date"`
	Season    string    `gorm:"size:10;not null;index" json:"season"` // e.g. "2025-26"
	Status    string    `gorm:"size:20;not null;default:'Upcoming'" json:"status"`
	Tier      string    `gorm:"size:10;not null" json:"tier"` // fixed at creation from rate

	Rate     float64  `gorm:"type:numeric(12,2);not null" json:"rate"`
	Discount *float64 `gorm:"type:numeric(12,2)" json:"discount"`

	// Cached signed total of expenses referencing this booking. Kept in sync
	// by the roll-up after every expense mutation; not authoritative.
	Expenses float64 `gorm:"type:numeric(12,2);not null;default:0" json:"expenses"`

	RefundAmount *float64 `gorm:"type:numeric(12,2)" json:"refund_amount"`

	Services ServiceSelections `gorm:"type:jsonb" json:"services"`

	Payments []Payment `gorm:"foreignKey:BookingID;references:ID" json:"payments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	StatusUpcoming  = "Upcoming"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"

	TierSilver  = "Silver"
	TierGold    = "Gold"
	TierDiamond = "Diamond"
)

// TierFromRate buckets a contracted rate into a display tier. Applied once
// when the booking is created; later rate edits never re-derive it.
func TierFromRate(rate float64) string {
	if rate >= 180000 {
		return TierDiamond
	}
	if rate >= 145000 {
		return TierGold
	}
	return TierSilver
}
