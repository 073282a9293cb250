package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/models"
	"gorm.io/gorm"
)

type CategoryRequest struct {
	Name             string `json:"name" validate:"required"`
	RequiresManpower bool   `json:"requires_manpower"`
}

func ListExpenseCategories(c *fiber.Ctx) error {
	var categories []models.ExpenseCategory
	database.DB.Order("name ASC").Find(&categories)
	return c.JSON(categories)
}

func CreateExpenseCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	category := models.ExpenseCategory{
		Name:             req.Name,
		RequiresManpower: req.RequiresManpower,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func UpdateExpenseCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")

	var category models.ExpenseCategory
	if err := database.DB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	category.Name = req.Name
	category.RequiresManpower = req.RequiresManpower
	database.DB.Save(&category)

	return c.JSON(category)
}

// DeleteExpenseCategory removes a category and cascades to its vendors.
func DeleteExpenseCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.ExpenseCategory{}, "id = ?", categoryID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.Vendor{}, "category_id = ?", categoryID).Error
	})
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type VendorRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

func ListVendors(c *fiber.Ctx) error {
	query := database.DB.Preload("Category").Order("name ASC")
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var vendors []models.Vendor
	query.Find(&vendors)
	return c.JSON(vendors)
}

func CreateVendor(c *fiber.Ctx) error {
	var req VendorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	var category models.ExpenseCategory
	if err := database.DB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown category"})
	}

	var count int64
	database.DB.Model(&models.Vendor{}).Where("LOWER(name) = LOWER(?)", req.Name).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": fmt.Sprintf("Vendor %q already exists", req.Name)})
	}

	vendor := models.Vendor{Name: req.Name, CategoryID: categoryID}
	if err := database.DB.Create(&vendor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vendor"})
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

func UpdateVendor(c *fiber.Ctx) error {
	vendorID := c.Params("vendorId")

	var vendor models.Vendor
	if err := database.DB.Where("id = ?", vendorID).First(&vendor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var req VendorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	vendor.Name = req.Name
	vendor.CategoryID = categoryID
	database.DB.Save(&vendor)

	return c.JSON(vendor)
}

func DeleteVendor(c *fiber.Ctx) error {
	vendorID := c.Params("vendorId")

	result := database.DB.Delete(&models.Vendor{}, "id = ?", vendorID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vendor"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
