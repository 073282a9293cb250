package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/heritagegrand/banquet_manager/configs"
	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/models"
	"github.com/heritagegrand/banquet_manager/services"
	"github.com/heritagegrand/banquet_manager/utils"
	"github.com/heritagegrand/banquet_manager/websocket"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	ClientName string                   `json:"client_name" validate:"required"`
	Contact    string                   `json:"contact" validate:"required"`
	EventType  string                   `json:"event_type,omitempty"`
	Guests     int                      `json:"guests" validate:"gte=0"`
	Shift      string                   `json:"shift,omitempty" validate:"omitempty,oneof=Day Night"`
	EventDate  string                   `json:"event_date" validate:"required,datetime=2006-01-02"`
	Season     string                   `json:"season,omitempty"`
	Rate       float64                  `json:"rate" validate:"required,gt=0"`
	Discount   *float64                 `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Advance    float64                  `json:"advance,omitempty" validate:"omitempty,gte=0"`
	Services   models.ServiceSelections `json:"services,omitempty"`
}

// BookingResponse decorates a booking with its derived financial summary.
type BookingResponse struct {
	models.Booking
	TotalPaid  float64 `json:"total_paid"`
	BalanceDue float64 `json:"balance_due"`
	Profit     float64 `json:"profit"`
}

func toBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		Booking:    b,
		TotalPaid:  services.TotalPaid(b.Payments),
		BalanceDue: services.BalanceDue(b),
		Profit:     services.Profit(b),
	}
}

// CurrentSeason reads the active season from config, falling back to the
// financial year containing today (April through March).
func CurrentSeason() string {
	if s := config.Config("CURRENT_SEASON"); s != "" {
		return s
	}
	now := time.Now()
	start := now.Year()
	if now.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Discount != nil && *req.Discount > req.Rate {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Discount cannot exceed the rate"})
	}

	eventDate, _ := time.Parse("2006-01-02", req.EventDate)

	season := req.Season
	if season == "" {
		season = CurrentSeason()
	}
	if _, _, err := services.SeasonWindow(season); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season format, expected YYYY-YY"})
	}

	if len(req.Services) > 0 {
		var catalog []models.ServiceDefinition
		database.DB.Find(&catalog)
		if err := services.ValidateSelections(req.Services, catalog); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	shift := req.Shift
	if shift == "" {
		shift = "Night"
	}
	eventType := req.EventType
	if eventType == "" {
		eventType = "Unspecified"
	}
	if req.Services == nil {
		req.Services = models.ServiceSelections{}
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var seasonBookings []models.Booking
		if err := tx.Where("season = ?", season).Find(&seasonBookings).Error; err != nil {
			return err
		}

		booking = models.Booking{
			BookingID:  utils.NextBookingID(seasonBookings, season),
			ClientName: req.ClientName,
			Contact:    req.Contact,
			EventType:  eventType,
			Guests:     req.Guests,
			Shift:      shift,
			EventDate:  eventDate,
			Season:     season,
			Status:     models.StatusUpcoming,
			Tier:       models.TierFromRate(req.Rate),
			Rate:       req.Rate,
			Discount:   req.Discount,
			Services:   req.Services,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if req.Advance > 0 {
			advance := models.Payment{
				BookingID: booking.ID,
				Date:      eventDate,
				Amount:    req.Advance,
				Method:    models.MethodBank,
				Type:      models.PaymentReceived,
			}
			if err := tx.Create(&advance).Error; err != nil {
				return err
			}
			booking.Payments = append(booking.Payments, advance)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking: " + err.Error()})
	}

	websocket.Notify("booking.created",
		fmt.Sprintf("Booking for %s created successfully!", booking.ClientName),
		"success", booking.BookingID)

	return c.Status(fiber.StatusCreated).JSON(toBookingResponse(booking))
}

func ListBookings(c *fiber.Ctx) error {
	query := database.DB.Preload("Payments").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if tier := c.Query("tier"); tier != "" {
		query = query.Where("tier = ?", tier)
	}
	if season := c.Query("season"); season != "" {
		query = query.Where("season = ?", season)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(client_name) LIKE ? OR LOWER(booking_id) LIKE ?", like, like)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list bookings"})
	}

	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return c.JSON(out)
}

func GetBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Payments").Where("id = ?", bookingID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return c.JSON(toBookingResponse(booking))
}

type UpdateBookingRequest struct {
	ClientName string                   `json:"client_name" validate:"required"`
	Contact    string                   `json:"contact" validate:"required"`
	EventType  string                   `json:"event_type,omitempty"`
	Guests     int                      `json:"guests" validate:"gte=0"`
	Shift      string                   `json:"shift,omitempty" validate:"omitempty,oneof=Day Night"`
	EventDate  string                   `json:"event_date" validate:"required,datetime=2006-01-02"`
	Rate       float64                  `json:"rate" validate:"required,gt=0"`
	Discount   *float64                 `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Services   models.ServiceSelections `json:"services,omitempty"`
}

// UpdateBooking edits a booking's core details. Payments are managed through
// their own endpoints and the tier stays whatever the creation rate produced.
func UpdateBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Payments").Where("id = ?", bookingID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Discount != nil && *req.Discount > req.Rate {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Discount cannot exceed the rate"})
	}

	if len(req.Services) > 0 {
		var catalog []models.ServiceDefinition
		database.DB.Find(&catalog)
		if err := services.ValidateSelections(req.Services, catalog); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	eventDate, _ := time.Parse("2006-01-02", req.EventDate)

	booking.ClientName = req.ClientName
	booking.Contact = req.Contact
	booking.Guests = req.Guests
	booking.EventDate = eventDate
	booking.Rate = req.Rate
	booking.Discount = req.Discount
	if req.EventType != "" {
		booking.EventType = req.EventType
	}
	if req.Shift != "" {
		booking.Shift = req.Shift
	}
	if req.Services != nil {
		booking.Services = req.Services
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	websocket.Notify("booking.updated",
		fmt.Sprintf("Booking for %s updated successfully!", booking.ClientName),
		"success", booking.BookingID)

	return c.JSON(toBookingResponse(booking))
}

type CancelBookingRequest struct {
	RefundAmount float64 `json:"refund_amount" validate:"gte=0"`
}

// CancelBooking marks the booking cancelled, records the refund amount and,
// when a refund is actually paid out, appends a synthetic Refund expense so
// the ledgers and the roll-up see the outflow.
func CancelBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Payments").Where("id = ?", bookingID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.Status == models.StatusCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking is already cancelled"})
	}

	var req CancelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		booking.Status = models.StatusCancelled
		booking.RefundAmount = &req.RefundAmount
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if req.RefundAmount > 0 {
			ref := booking.BookingID
			refund := models.Expense{
				BookingRef:    &ref,
				ExpenseDate:   time.Now().UTC().Truncate(24 * time.Hour),
				Category:      "Refund",
				Vendor:        fmt.Sprintf("Refund to %s", booking.ClientName),
				Amount:        req.RefundAmount,
				PaymentMethod: models.MethodBank,
				Type:          models.ExpensePaid,
			}
			if err := tx.Create(&refund).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking: " + err.Error()})
	}

	if _, err := services.SyncBookingExpenses(database.DB); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to recompute expense totals"})
	}
	database.DB.Preload("Payments").Where("id = ?", booking.ID).First(&booking)

	websocket.Notify("booking.cancelled",
		fmt.Sprintf("Booking for %s has been cancelled.", booking.ClientName),
		"warning", booking.BookingID)

	return c.JSON(toBookingResponse(booking))
}
