package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/models"
	"github.com/heritagegrand/banquet_manager/services"
)

type PackageRequest struct {
	Name     string                   `json:"name" validate:"required"`
	Price    float64                  `json:"price" validate:"required,gt=0"`
	Services models.ServiceSelections `json:"services,omitempty"`
}

func ListPackages(c *fiber.Ctx) error {
	var packages []models.Package
	database.DB.Order("price ASC").Find(&packages)
	return c.JSON(packages)
}

func CreatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validatePackageServices(req.Services); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Services == nil {
		req.Services = models.ServiceSelections{}
	}

	pkg := models.Package{Name: req.Name, Price: req.Price, Services: req.Services}
	if err := database.DB.Create(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create package"})
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func UpdatePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	var pkg models.Package
	if err := database.DB.Where("id = ?", packageID).First(&pkg).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validatePackageServices(req.Services); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pkg.Name = req.Name
	pkg.Price = req.Price
	if req.Services != nil {
		pkg.Services = req.Services
	}
	database.DB.Save(&pkg)

	return c.JSON(pkg)
}

func DeletePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	result := database.DB.Delete(&models.Package{}, "id = ?", packageID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete package"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func validatePackageServices(selections models.ServiceSelections) error {
	if len(selections) == 0 {
		return nil
	}
	var catalog []models.ServiceDefinition
	database.DB.Find(&catalog)
	return services.ValidateSelections(selections, catalog)
}
