package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/models"
	"github.com/heritagegrand/banquet_manager/services"
	"github.com/heritagegrand/banquet_manager/websocket"
	"gorm.io/gorm"
)

type AddExpenseRequest struct {
	BookingID     *string  `json:"booking_id,omitempty"` // human id; nil means general expense
	ExpenseDate   string   `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Category      string   `json:"category" validate:"required"`
	Vendor        string   `json:"vendor" validate:"required"`
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=Cash Card UPI Bank"`
	Notes         *string  `json:"notes,omitempty"`
	ManpowerCount *int     `json:"manpower_count,omitempty" validate:"omitempty,gt=0"`
	RatePerPerson *float64 `json:"rate_per_person,omitempty" validate:"omitempty,gt=0"`

	// Category for a newly auto-created vendor; defaults to "Other".
	VendorCategoryID *string `json:"vendor_category_id,omitempty" validate:"omitempty,uuid"`
}

func AddExpense(c *fiber.Ctx) error {
	var req AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.ExpenseCategory
	if err := database.DB.Where("name = ?", req.Category).First(&category).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown expense category"})
	}

	if category.RequiresManpower {
		if req.ManpowerCount == nil || req.RatePerPerson == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Manpower count and rate per person are required for this category"})
		}
		if float64(*req.ManpowerCount)**req.RatePerPerson != req.Amount {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must equal manpower count times rate per person"})
		}
	}

	if req.BookingID != nil && *req.BookingID != "" {
		var count int64
		database.DB.Model(&models.Booking{}).Where("booking_id = ?", *req.BookingID).Count(&count)
		if count == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Referenced booking not found"})
		}
	}

	expenseDate, _ := time.Parse("2006-01-02", req.ExpenseDate)
	expense := models.Expense{
		BookingRef:    req.BookingID,
		ExpenseDate:   expenseDate,
		Category:      req.Category,
		Vendor:        req.Vendor,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Type:          models.ExpensePaid,
		Notes:         req.Notes,
		ManpowerCount: req.ManpowerCount,
		RatePerPerson: req.RatePerPerson,
	}

	vendorCategoryID := uuid.Nil
	if req.VendorCategoryID != nil {
		vendorCategoryID, _ = uuid.Parse(*req.VendorCategoryID)
	}

	var vendorCreated bool
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}
		created, err := ensureVendor(tx, req.Vendor, vendorCategoryID)
		if err != nil {
			return err
		}
		vendorCreated = created
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record expense: " + err.Error()})
	}

	if _, err := services.SyncBookingExpenses(database.DB); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to recompute expense totals"})
	}

	if vendorCreated {
		websocket.Notify("vendor.created",
			fmt.Sprintf("New vendor %q added to category.", req.Vendor), "info", "")
	}
	websocket.Notify("expense.added", "Expense added successfully!", "success", expense.ID.String())

	return c.Status(fiber.StatusCreated).JSON(expense)
}

// ensureVendor auto-creates a vendor the first time a novel name is used on
// an expense. Matching is case-insensitive; existing vendors are left alone.
// New vendors land in the explicitly requested category, otherwise "Other",
// which is created on the spot if missing.
func ensureVendor(tx *gorm.DB, name string, requestedCategory uuid.UUID) (bool, error) {
	var vendors []models.Vendor
	if err := tx.Find(&vendors).Error; err != nil {
		return false, err
	}
	if services.VendorExists(vendors, name) {
		return false, nil
	}

	var categories []models.ExpenseCategory
	if err := tx.Find(&categories).Error; err != nil {
		return false, err
	}
	categoryID, ok := services.AutoVendorCategory(requestedCategory, categories)
	if !ok {
		other := models.ExpenseCategory{Name: "Other"}
		if err := tx.Create(&other).Error; err != nil {
			return false, err
		}
		categoryID = other.ID
	}

	vendor := models.Vendor{Name: name, CategoryID: categoryID}
	if err := tx.Create(&vendor).Error; err != nil {
		return false, err
	}
	return true, nil
}

type RevertExpenseRequest struct {
	ExpenseID string  `json:"expense_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Notes     string  `json:"notes" validate:"required"`
}

// RevertExpense appends a counter-entry for a paid expense, dated today,
// carrying the original's category, vendor, method and booking reference.
func RevertExpense(c *fiber.Ctx) error {
	var req RevertExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var original models.Expense
	if err := database.DB.Where("id = ?", req.ExpenseID).First(&original).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	if original.Type != models.ExpensePaid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only paid expenses can be reverted"})
	}
	if req.Amount > original.Amount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Revert amount must be between 0 and %.2f", original.Amount),
		})
	}

	notes := req.Notes
	revert := models.Expense{
		BookingRef:    original.BookingRef,
		ExpenseDate:   time.Now().UTC().Truncate(24 * time.Hour),
		Category:      original.Category,
		Vendor:        original.Vendor,
		Amount:        req.Amount,
		PaymentMethod: original.PaymentMethod,
		Type:          models.ExpenseReverted,
		Notes:         &notes,
	}
	if err := database.DB.Create(&revert).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revert expense"})
	}

	if _, err := services.SyncBookingExpenses(database.DB); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to recompute expense totals"})
	}

	websocket.Notify("expense.reverted",
		fmt.Sprintf("Expense of ₹%.0f reverted successfully.", req.Amount),
		"warning", original.ID.String())

	return c.Status(fiber.StatusCreated).JSON(revert)
}

// ListExpenses returns booking-linked expenses for ?booking_id=, general
// expenses for ?general=true, or everything.
func ListExpenses(c *fiber.Ctx) error {
	query := database.DB.Order("expense_date ASC, created_at ASC")

	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("booking_ref = ?", bookingID)
	} else if c.Query("general") == "true" {
		query = query.Where("booking_ref IS NULL")
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list expenses"})
	}
	return c.JSON(expenses)
}
