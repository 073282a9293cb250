package database

import (
	"log"

	"github.com/heritagegrand/banquet_manager/models"
)

func intPtr(v int) *int { return &v }

// SeedDefaults loads the venue's default expense categories, service catalog
// and packages into an empty database. Each group is skipped when records
// already exist so restarts never duplicate configuration.
func SeedDefaults() {
	seedExpenseCategories()
	seedServiceCatalog()
	seedPackages()
}

func seedExpenseCategories() {
	var count int64
	if err := DB.Model(&models.ExpenseCategory{}).Count(&count).Error; err != nil {
		log.Printf("🔥 Failed to check expense categories: %v", err)
		return
	}
	if count > 0 {
		return
	}

	categories := []models.ExpenseCategory{
		{Name: "Catering"},
		{Name: "Decoration"},
		{Name: "Staff", RequiresManpower: true},
		{Name: "Labour", RequiresManpower: true},
		{Name: "AV Equipment"},
		{Name: "Salary"},
		{Name: "Utilities"},
		{Name: "Maintenance"},
		{Name: "Marketing"},
		{Name: "Refund"},
		{Name: "Other"},
	}
	if err := DB.Create(&categories).Error; err != nil {
		log.Printf("🔥 Failed to seed expense categories: %v", err)
		return
	}
	log.Println("✅ Default expense categories seeded")
}

func seedServiceCatalog() {
	var count int64
	if err := DB.Model(&models.ServiceDefinition{}).Count(&count).Error; err != nil {
		log.Printf("🔥 Failed to check service catalog: %v", err)
		return
	}
	if count > 0 {
		return
	}

	services := []models.ServiceDefinition{
		{Key: "ac-hall", Name: "AC Hall", Category: "infrastructure", Type: models.ServiceCheckbox},
		{Key: "indoor-stage", Name: "Indoor Stage", Category: "infrastructure", Type: models.ServiceCheckbox},
		{Key: "coffee-machine", Name: "Coffee Machine", Category: "infrastructure", Type: models.ServiceCheckbox},
		{Key: "generator-setup", Name: "Generator Setup", Category: "infrastructure", Type: models.ServiceDropdown,
			Options: models.StringSlice{"None", "15 KVA Generator", "25 KVA Generator"}},
		{Key: "flower-decoration", Name: "Flower Decoration", Category: "decoration", Type: models.ServiceCheckbox},
		{Key: "lighting-decoration", Name: "Lighting Decoration", Category: "decoration", Type: models.ServiceCheckbox},
		{Key: "natural-flower-decoration", Name: "Natural Flower Decoration", Category: "decoration", Type: models.ServiceCheckbox},
		{Key: "service-manager-count", Name: "Service Manager", Category: "labour", Type: models.ServiceNumber, Min: intPtr(0), Max: intPtr(5)},
		{Key: "waiters-count", Name: "Waiters", Category: "labour", Type: models.ServiceNumber, Min: intPtr(0), Max: intPtr(20)},
		{Key: "fruit-counter-count", Name: "Fruit Counter", Category: "halwai", Type: models.ServiceNumber, Min: intPtr(0), Max: intPtr(10)},
		{Key: "main-course-counter-count", Name: "Main Course Counter", Category: "halwai", Type: models.ServiceNumber, Min: intPtr(0), Max: intPtr(10)},
		{Key: "snacks-counter-count", Name: "Snacks Counter", Category: "halwai", Type: models.ServiceNumber, Min: intPtr(0), Max: intPtr(10)},
		{Key: "dj-setup", Name: "DJ Setup", Category: "extra", Type: models.ServiceDropdown,
			Options: models.StringSlice{"None", "Basic DJ Setup", "Premium DJ Setup"}},
		{Key: "anar-matka", Name: "Anar Matka", Category: "extra", Type: models.ServiceCheckbox},
		{Key: "mirror-entry", Name: "Mirror Entry", Category: "entry-decor", Type: models.ServiceCheckbox},
		{Key: "balloon-arch", Name: "Balloon Arch", Category: "entry-decor", Type: models.ServiceCheckbox},
		{Key: "welcome-gate", Name: "Welcome Gate", Category: "entry-decor", Type: models.ServiceCheckbox},
	}
	if err := DB.Create(&services).Error; err != nil {
		log.Printf("🔥 Failed to seed service catalog: %v", err)
		return
	}
	log.Println("✅ Default service catalog seeded")
}

func seedPackages() {
	var count int64
	if err := DB.Model(&models.Package{}).Count(&count).Error; err != nil {
		log.Printf("🔥 Failed to check packages: %v", err)
		return
	}
	if count > 0 {
		return
	}

	packages := []models.Package{
		{
			Name:  "Silver Package",
			Price: 110000,
			Services: models.ServiceSelections{
				"ac-hall": true, "flower-decoration": true, "waiters-count": 5,
				"generator-setup": "15 KVA Generator", "main-course-counter-count": 2,
			},
		},
		{
			Name:  "Gold Package",
			Price: 145000,
			Services: models.ServiceSelections{
				"ac-hall": true, "flower-decoration": true, "lighting-decoration": true,
				"waiters-count": 8, "service-manager-count": 1, "generator-setup": "25 KVA Generator",
				"main-course-counter-count": 3, "dj-setup": "Basic DJ Setup",
			},
		},
		{
			Name:  "Diamond Package",
			Price: 180000,
			Services: models.ServiceSelections{
				"ac-hall": true, "natural-flower-decoration": true, "lighting-decoration": true,
				"waiters-count": 12, "service-manager-count": 2, "generator-setup": "25 KVA Generator",
				"main-course-counter-count": 4, "dj-setup": "Premium DJ Setup", "mirror-entry": true,
			},
		},
	}
	if err := DB.Create(&packages).Error; err != nil {
		log.Printf("🔥 Failed to seed packages: %v", err)
		return
	}
	log.Println("✅ Default packages seeded")
}
