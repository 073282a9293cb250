package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ServiceDefinition describes one configurable service a booking may select:
// a checkbox, a bounded number, or a dropdown with a fixed option list.
type ServiceDefinition struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Key      string    `gorm:"size:100;not null;unique" json:"key"` // stable key used in Booking.Services
	Name     string    `gorm:"size:255;not null" json:"name"`
	Category string    `gorm:"size:30;not null;index" json:"category"`
	Type     string    `gorm:"size:10;not null" json:"type"` // checkbox | number | dropdown

	Min     *int        `json:"min"`
	Max     *int        `json:"max"`
	Options StringSlice `gorm:"type:jsonb" json:"options"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	ServiceCheckbox = "checkbox"
	ServiceNumber   = "number"
	ServiceDropdown = "dropdown"
)

// ServiceCategories is the fixed set of groups the control center manages.
var ServiceCategories = []string{
	"infrastructure", "decoration", "labour", "halwai", "extra", "entry-decor",
}

func IsServiceCategory(name string) bool {
	for _, c := range ServiceCategories {
		if c == name {
			return true
		}
	}
	return false
}

// ServiceSelections is a booking's polymorphic service map, stored as jsonb.
// Values are bool (checkbox), float64 (number) or string (dropdown option).
type ServiceSelections map[string]interface{}

func (s ServiceSelections) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

func (s *ServiceSelections) Scan(value interface{}) error {
	if value == nil {
		*s = ServiceSelections{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("unsupported type for ServiceSelections")
}

type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("unsupported type for StringSlice")
}
