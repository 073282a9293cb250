package services

import (
	"testing"
	"time"

	"github.com/heritagegrand/banquet_manager/models"
)

func TestComputeSeasonStats(t *testing.T) {
	bookings := []models.Booking{
		{
			BookingID: "HG/25-26/001", Season: "2025-26", Status: models.StatusUpcoming,
			Rate: 200000, Discount: floatPtr(20000),
			Payments: []models.Payment{{Amount: 80000, Type: models.PaymentReceived}},
		},
		{
			BookingID: "HG/25-26/002", Season: "2025-26", Status: models.StatusCancelled,
			Rate: 150000,
			Payments: []models.Payment{{Amount: 30000, Type: models.PaymentReceived}},
		},
		{
			BookingID: "HG/24-25/001", Season: "2024-25", Status: models.StatusCompleted,
			Rate: 120000,
		},
	}
	expenses := []models.Expense{
		{BookingRef: strPtr("HG/25-26/001"), Amount: 25000, Type: models.ExpensePaid, ExpenseDate: day(2025, time.May, 1)},
		// follows its cancelled booking, still in season
		{BookingRef: strPtr("HG/25-26/002"), Amount: 5000, Type: models.ExpensePaid, ExpenseDate: day(2025, time.May, 1)},
		// other season's booking
		{BookingRef: strPtr("HG/24-25/001"), Amount: 9000, Type: models.ExpensePaid, ExpenseDate: day(2024, time.December, 1)},
		// general, calendar year 2026 = startYear+1, in by the year heuristic
		{Amount: 3000, Type: models.ExpensePaid, ExpenseDate: day(2026, time.February, 10)},
		// general, calendar year 2024, out
		{Amount: 7000, Type: models.ExpensePaid, ExpenseDate: day(2024, time.June, 10)},
	}

	stats := ComputeSeasonStats(bookings, expenses, "2025-26")

	if stats.TotalBookings != 2 {
		t.Fatalf("TotalBookings = %d, want 2", stats.TotalBookings)
	}
	if stats.UpcomingCount != 1 {
		t.Fatalf("UpcomingCount = %d, want 1", stats.UpcomingCount)
	}
	if stats.Revenue != 180000 {
		t.Fatalf("Revenue = %v, want 180000 (cancelled excluded)", stats.Revenue)
	}
	if stats.TotalPaid != 80000 {
		t.Fatalf("TotalPaid = %v, want 80000", stats.TotalPaid)
	}
	if stats.PendingBalance != 100000 {
		t.Fatalf("PendingBalance = %v, want 100000", stats.PendingBalance)
	}
	// 25000 + 5000 + 3000
	if stats.TotalExpenses != 33000 {
		t.Fatalf("TotalExpenses = %v, want 33000", stats.TotalExpenses)
	}
	if stats.NetProfit != 147000 {
		t.Fatalf("NetProfit = %v, want 147000", stats.NetProfit)
	}
}

func TestSeasonStatsRevertedExpenseNets(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 10000, Type: models.ExpensePaid, ExpenseDate: day(2025, time.June, 1)},
		{Amount: 4000, Type: models.ExpenseReverted, ExpenseDate: day(2025, time.June, 5)},
	}
	stats := ComputeSeasonStats(nil, expenses, "2025-26")
	if stats.TotalExpenses != 6000 {
		t.Fatalf("TotalExpenses = %v, want 6000", stats.TotalExpenses)
	}
}

func TestComputeGlobalAnalytics(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.StatusCompleted, Rate: 200000, Tier: models.TierDiamond},
		{Status: models.StatusUpcoming, Rate: 150000, Discount: floatPtr(10000), Tier: models.TierGold},
		{Status: models.StatusCancelled, Rate: 100000, Tier: models.TierSilver},
	}
	expenses := []models.Expense{
		{BookingRef: strPtr("HG/25-26/001"), Amount: 40000, Type: models.ExpensePaid},
		{BookingRef: strPtr("HG/25-26/001"), Amount: 5000, Type: models.ExpenseReverted},
		{Amount: 15000, Type: models.ExpensePaid},
	}

	a := ComputeGlobalAnalytics(bookings, expenses)

	if a.TotalBookings != 3 {
		t.Fatalf("TotalBookings = %d, want 3", a.TotalBookings)
	}
	if a.Revenue != 340000 {
		t.Fatalf("Revenue = %v, want 340000", a.Revenue)
	}
	if a.BookingExpenses != 35000 {
		t.Fatalf("BookingExpenses = %v, want 35000", a.BookingExpenses)
	}
	if a.GeneralExpenses != 15000 {
		t.Fatalf("GeneralExpenses = %v, want 15000", a.GeneralExpenses)
	}
	if a.Profit != 290000 {
		t.Fatalf("Profit = %v, want 290000", a.Profit)
	}
	if a.AvgBookingValue != 170000 {
		t.Fatalf("AvgBookingValue = %v, want 170000", a.AvgBookingValue)
	}
	if a.BookingsByTier[models.TierSilver] != 0 {
		t.Fatal("cancelled booking must not count in tier histogram")
	}
	if a.BookingsByTier[models.TierDiamond] != 1 || a.BookingsByTier[models.TierGold] != 1 {
		t.Fatalf("tier histogram wrong: %+v", a.BookingsByTier)
	}
}

func TestGlobalAnalyticsZeroRevenue(t *testing.T) {
	a := ComputeGlobalAnalytics(nil, []models.Expense{
		{Amount: 5000, Type: models.ExpensePaid},
	})
	if a.ProfitMargin != 0 {
		t.Fatalf("ProfitMargin = %v, want 0 with zero revenue", a.ProfitMargin)
	}
	if a.AvgBookingValue != 0 {
		t.Fatalf("AvgBookingValue = %v, want 0 with no bookings", a.AvgBookingValue)
	}
}

func TestAvailableSeasons(t *testing.T) {
	seasons := AvailableSeasons([]models.Booking{
		{Season: "2023-24"},
		{Season: "2025-26"},
	})

	want := []string{"2023-24", "2024-25", "2025-26", "2026-27"}
	if len(seasons) != len(want) {
		t.Fatalf("seasons = %v, want %v", seasons, want)
	}
	for i := range want {
		if seasons[i] != want[i] {
			t.Fatalf("seasons = %v, want %v", seasons, want)
		}
	}
}
