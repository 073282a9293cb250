package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/models"
	"github.com/heritagegrand/banquet_manager/services"
)

// GetDashboard serves the season overview: the stat block plus the most
// recent bookings and the next upcoming events for that season.
func GetDashboard(c *fiber.Ctx) error {
	season := c.Query("season")
	if season == "" {
		season = CurrentSeason()
	}
	if _, _, err := services.SeasonWindow(season); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season format, expected YYYY-YY"})
	}

	var bookings []models.Booking
	if err := database.DB.Preload("Payments").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}
	var expenses []models.Expense
	if err := database.DB.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load expenses"})
	}

	stats := services.ComputeSeasonStats(bookings, expenses, season)

	seasonBookings := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.Season == season {
			seasonBookings = append(seasonBookings, b)
		}
	}

	recent := append([]models.Booking(nil), seasonBookings...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].EventDate.After(recent[j].EventDate)
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}

	upcoming := make([]models.Booking, 0)
	for _, b := range seasonBookings {
		if b.Status == models.StatusUpcoming {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].EventDate.Before(upcoming[j].EventDate)
	})
	if len(upcoming) > 2 {
		upcoming = upcoming[:2]
	}

	return c.JSON(fiber.Map{
		"season":            season,
		"stats":             stats,
		"recent_bookings":   recent,
		"upcoming_soon":     upcoming,
		"available_seasons": services.AvailableSeasons(bookings),
	})
}

// GetAnalytics serves the all-season business overview.
func GetAnalytics(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}
	var expenses []models.Expense
	if err := database.DB.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load expenses"})
	}

	return c.JSON(services.ComputeGlobalAnalytics(bookings, expenses))
}

// ExportAnalytics downloads the analytics summary as CSV or PDF.
func ExportAnalytics(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}
	var expenses []models.Expense
	if err := database.DB.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load expenses"})
	}

	analytics := services.ComputeGlobalAnalytics(bookings, expenses)

	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"Total Bookings", fmt.Sprintf("%d", analytics.TotalBookings)},
		{"Total Revenue (INR)", formatAmount(analytics.Revenue)},
		{"General Expenses (INR)", formatAmount(analytics.GeneralExpenses)},
		{"Net Profit (INR)", formatAmount(analytics.Profit)},
		{"Avg Booking Value (INR)", fmt.Sprintf("%.2f", analytics.AvgBookingValue)},
		{"Profit Margin (%)", fmt.Sprintf("%.2f", analytics.ProfitMargin)},
	}

	return sendTabular(c, "Analytics Summary", headers, rows)
}

// ExportBookings downloads the filtered bookings report, one row per
// booking with its derived paid total.
func ExportBookings(c *fiber.Ctx) error {
	query := database.DB.Preload("Payments").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if tier := c.Query("tier"); tier != "" {
		query = query.Where("tier = ?", tier)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(client_name) LIKE ? OR LOWER(booking_id) LIKE ?", like, like)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}

	headers := []string{"Booking ID", "Client Name", "Status", "Tier", "Event Date", "Rate", "Paid", "Expenses", "Refund"}
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		refund := 0.0
		if b.RefundAmount != nil {
			refund = *b.RefundAmount
		}
		rows = append(rows, []string{
			b.BookingID, b.ClientName, b.Status, b.Tier,
			b.EventDate.Format("2006-01-02"),
			formatAmount(b.Rate),
			formatAmount(services.TotalPaid(b.Payments)),
			formatAmount(b.Expenses),
			formatAmount(refund),
		})
	}

	return sendTabular(c, "Bookings Report", headers, rows)
}
