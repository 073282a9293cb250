package services

import (
	"testing"
	"time"

	"github.com/heritagegrand/banquet_manager/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func TestTotalPaidNetsReverts(t *testing.T) {
	payments := []models.Payment{
		{Amount: 100000, Type: models.PaymentReceived},
		{Amount: 90000, Type: models.PaymentReceived},
		{Amount: 20000, Type: models.PaymentReverted},
	}
	if got := TotalPaid(payments); got != 170000 {
		t.Fatalf("TotalPaid = %v, want 170000", got)
	}
}

func TestTotalPaidEmptyAndNegative(t *testing.T) {
	if got := TotalPaid(nil); got != 0 {
		t.Fatalf("TotalPaid(nil) = %v, want 0", got)
	}

	// an over-reverted ledger goes negative and must not be clamped
	payments := []models.Payment{
		{Amount: 5000, Type: models.PaymentReceived},
		{Amount: 5000, Type: models.PaymentReverted},
		{Amount: 2000, Type: models.PaymentReverted},
	}
	if got := TotalPaid(payments); got != -2000 {
		t.Fatalf("TotalPaid = %v, want -2000", got)
	}
}

func TestBalanceDue(t *testing.T) {
	booking := models.Booking{
		Status:   models.StatusUpcoming,
		Rate:     250000,
		Discount: floatPtr(25000),
		Payments: []models.Payment{
			{Amount: 100000, Type: models.PaymentReceived},
		},
	}
	if got := BalanceDue(booking); got != 125000 {
		t.Fatalf("BalanceDue = %v, want 125000", got)
	}
}

func TestBalanceDueNoPayments(t *testing.T) {
	booking := models.Booking{Status: models.StatusUpcoming, Rate: 180000}
	if got := BalanceDue(booking); got != 180000 {
		t.Fatalf("BalanceDue = %v, want full rate 180000", got)
	}
}

func TestProfitActiveBooking(t *testing.T) {
	booking := models.Booking{
		Status:   models.StatusUpcoming,
		Rate:     200000,
		Discount: floatPtr(20000),
		Expenses: 50000,
	}
	if got := Profit(booking); got != 130000 {
		t.Fatalf("Profit = %v, want 130000", got)
	}
}

func TestProfitCancelledBooking(t *testing.T) {
	booking := models.Booking{
		Status:       models.StatusCancelled,
		Rate:         200000,
		Expenses:     5000,
		RefundAmount: floatPtr(25000),
		Payments: []models.Payment{
			{Amount: 30000, Type: models.PaymentReceived},
		},
	}
	if got := Profit(booking); got != 0 {
		t.Fatalf("cancelled profit = %v, want 0", got)
	}
}

func TestProfitCanGoNegative(t *testing.T) {
	booking := models.Booking{
		Status:   models.StatusCompleted,
		Rate:     100000,
		Expenses: 120000,
	}
	if got := Profit(booking); got != -20000 {
		t.Fatalf("Profit = %v, want -20000", got)
	}
}

func TestRollUpExpenses(t *testing.T) {
	expenses := []models.Expense{
		{BookingRef: strPtr("HG/25-26/001"), Amount: 10000, Type: models.ExpensePaid},
		{BookingRef: strPtr("HG/25-26/001"), Amount: 2000, Type: models.ExpenseReverted},
		{BookingRef: strPtr("HG/25-26/002"), Amount: 7000, Type: models.ExpensePaid},
		{Amount: 99999, Type: models.ExpensePaid}, // general, never rolls up
	}

	totals := RollUpExpenses(expenses)
	if got := totals["HG/25-26/001"]; got != 8000 {
		t.Fatalf("roll-up for 001 = %v, want 8000", got)
	}
	if got := totals["HG/25-26/002"]; got != 7000 {
		t.Fatalf("roll-up for 002 = %v, want 7000", got)
	}
	if _, ok := totals[""]; ok {
		t.Fatal("general expenses must not produce a roll-up entry")
	}
}

func TestRollUpExpensesIdempotent(t *testing.T) {
	expenses := []models.Expense{
		{BookingRef: strPtr("HG/25-26/001"), Amount: 10000, Type: models.ExpensePaid},
		{BookingRef: strPtr("HG/25-26/001"), Amount: 4000, Type: models.ExpenseReverted},
	}

	first := RollUpExpenses(expenses)
	second := RollUpExpenses(expenses)
	if len(first) != len(second) {
		t.Fatalf("roll-up sizes differ: %d vs %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Fatalf("roll-up for %s differs: %v vs %v", k, v, second[k])
		}
	}
}
