package models

import (
	"time"

	"github.com/google/uuid"
)

// Package is a pricing template applied when creating a booking: it prefills
// the contracted rate and the service selections.
type Package struct {
	ID       uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string            `gorm:"size:255;not null" json:"name"`
	Price    float64           `gorm:"type:numeric(12,2);not null" json:"price"`
	Services ServiceSelections `gorm:"type:jsonb" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
