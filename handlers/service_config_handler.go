package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/models"
)

type ServiceRequest struct {
	Key      string   `json:"key" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Type     string   `json:"type" validate:"required,oneof=checkbox number dropdown"`
	Min      *int     `json:"min,omitempty"`
	Max      *int     `json:"max,omitempty"`
	Options  []string `json:"options,omitempty"`
}

func (r ServiceRequest) check() string {
	if !models.IsServiceCategory(r.Category) {
		return "Unknown service category"
	}
	switch r.Type {
	case models.ServiceNumber:
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return "Min cannot exceed max"
		}
	case models.ServiceDropdown:
		if len(r.Options) == 0 {
			return "Dropdown services need at least one option"
		}
	}
	return ""
}

// GetServiceConfig returns the whole catalog grouped by its fixed
// categories, empty groups included.
func GetServiceConfig(c *fiber.Ctx) error {
	var catalog []models.ServiceDefinition
	database.DB.Order("category ASC, name ASC").Find(&catalog)

	grouped := make(map[string][]models.ServiceDefinition, len(models.ServiceCategories))
	for _, category := range models.ServiceCategories {
		grouped[category] = []models.ServiceDefinition{}
	}
	for _, def := range catalog {
		grouped[def.Category] = append(grouped[def.Category], def)
	}
	return c.JSON(grouped)
}

func CreateService(c *fiber.Ctx) error {
	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := req.check(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	service := models.ServiceDefinition{
		Key:      req.Key,
		Name:     req.Name,
		Category: req.Category,
		Type:     req.Type,
		Min:      req.Min,
		Max:      req.Max,
		Options:  models.StringSlice(req.Options),
	}
	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	var service models.ServiceDefinition
	if err := database.DB.Where("id = ?", serviceID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := req.check(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	service.Key = req.Key
	service.Name = req.Name
	service.Category = req.Category
	service.Type = req.Type
	service.Min = req.Min
	service.Max = req.Max
	service.Options = models.StringSlice(req.Options)
	database.DB.Save(&service)

	return c.JSON(service)
}

// DeleteService removes a catalog entry. Bookings that already recorded the
// key keep their stored selection; nothing rewrites history.
func DeleteService(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	result := database.DB.Delete(&models.ServiceDefinition{}, "id = ?", serviceID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
