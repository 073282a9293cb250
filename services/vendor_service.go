package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heritagegrand/banquet_manager/models"
)

// VendorExists reports whether a name already matches a vendor, ignoring
// case. Matching names never auto-create a duplicate.
func VendorExists(vendors []models.Vendor, name string) bool {
	lower := strings.ToLower(name)
	for _, v := range vendors {
		if strings.ToLower(v.Name) == lower {
			return true
		}
	}
	return false
}

// AutoVendorCategory picks the category a newly auto-created vendor is filed
// under: the explicitly requested category when one was given, otherwise the
// "Other" category. ok is false only when nothing was requested and no
// "Other" category exists yet; the caller must then create it.
func AutoVendorCategory(requested uuid.UUID, categories []models.ExpenseCategory) (uuid.UUID, bool) {
	if requested != uuid.Nil {
		return requested, true
	}
	for _, c := range categories {
		if c.Name == "Other" {
			return c.ID, true
		}
	}
	return uuid.Nil, false
}
