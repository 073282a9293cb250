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
)

type AddPaymentRequest struct {
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,oneof=Cash Card UPI Bank"`
	Notes  *string `json:"notes,omitempty"`
}

func AddPayment(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.Status == models.StatusCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot record payments on a cancelled booking"})
	}

	var req AddPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	payment := models.Payment{
		BookingID: booking.ID,
		Date:      date,
		Amount:    req.Amount,
		Method:    req.Method,
		Type:      models.PaymentReceived,
		Notes:     req.Notes,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	websocket.Notify("payment.added",
		fmt.Sprintf("Payment of ₹%.0f added successfully!", req.Amount),
		"success", booking.BookingID)

	return c.Status(fiber.StatusCreated).JSON(payment)
}

type RevertPaymentRequest struct {
	PaymentID string  `json:"payment_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Notes     string  `json:"notes" validate:"required"`
}

// RevertPayment appends a counter-entry against an earlier received payment.
// The original row is never touched; the revert carries its method, today's
// date and the mandatory reason. The amount may not exceed the original
// payment, nor what the ledger still holds as received overall.
func RevertPayment(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Payments").Where("id = ?", bookingID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var req RevertPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	paymentID, _ := uuid.Parse(req.PaymentID)
	var original *models.Payment
	for i := range booking.Payments {
		if booking.Payments[i].ID == paymentID {
			original = &booking.Payments[i]
			break
		}
	}
	if original == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found on this booking"})
	}
	if original.Type != models.PaymentReceived {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only received payments can be reverted"})
	}
	if req.Amount > original.Amount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Revert amount must be between 0 and %.2f", original.Amount),
		})
	}
	if req.Amount > services.TotalPaid(booking.Payments) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Revert amount exceeds the outstanding received total"})
	}

	notes := req.Notes
	revert := models.Payment{
		BookingID: booking.ID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Amount:    req.Amount,
		Method:    original.Method,
		Type:      models.PaymentReverted,
		Notes:     &notes,
	}
	if err := database.DB.Create(&revert).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revert payment"})
	}

	websocket.Notify("payment.reverted",
		fmt.Sprintf("Payment of ₹%.0f reverted successfully.", req.Amount),
		"warning", booking.BookingID)

	return c.Status(fiber.StatusCreated).JSON(revert)
}
