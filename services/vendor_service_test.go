package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/heritagegrand/banquet_manager/models"
)

func TestVendorExistsCaseInsensitive(t *testing.T) {
	vendors := []models.Vendor{
		{Name: "Gupta Caterers"},
		{Name: "Floral Art"},
	}

	cases := []struct {
		name string
		want bool
	}{
		{"Gupta Caterers", true},
		{"gupta caterers", true},
		{"GUPTA CATERERS", true},
		{"Sharma Caterers", false},
		{"Gupta", false},
	}
	for _, c := range cases {
		if got := VendorExists(vendors, c.name); got != c.want {
			t.Errorf("VendorExists(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestVendorExistsEmptyList(t *testing.T) {
	if VendorExists(nil, "Anyone") {
		t.Fatal("no vendor can exist in an empty list")
	}
}

func TestAutoVendorCategoryHonorsRequest(t *testing.T) {
	requested := uuid.New()
	categories := []models.ExpenseCategory{
		{ID: uuid.New(), Name: "Catering"},
		{ID: uuid.New(), Name: "Other"},
	}

	got, ok := AutoVendorCategory(requested, categories)
	if !ok || got != requested {
		t.Fatalf("requested category not honored: got %v ok=%v", got, ok)
	}
}

func TestAutoVendorCategoryDefaultsToOther(t *testing.T) {
	catering := models.ExpenseCategory{ID: uuid.New(), Name: "Catering"}
	other := models.ExpenseCategory{ID: uuid.New(), Name: "Other"}

	got, ok := AutoVendorCategory(uuid.Nil, []models.ExpenseCategory{catering, other})
	if !ok {
		t.Fatal("expected the Other category to resolve")
	}
	if got != other.ID {
		t.Fatalf("default category = %v, want Other (%v), not the expense's own (%v)", got, other.ID, catering.ID)
	}
}

func TestAutoVendorCategoryMissingOther(t *testing.T) {
	categories := []models.ExpenseCategory{
		{ID: uuid.New(), Name: "Catering"},
	}

	got, ok := AutoVendorCategory(uuid.Nil, categories)
	if ok {
		t.Fatalf("no Other category exists, yet got %v", got)
	}
}
