package models

import (
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`

	Category ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
