package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"size:100;not null;unique" json:"name"`
	RequiresManpower bool      `gorm:"default:false" json:"requires_manpower"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
