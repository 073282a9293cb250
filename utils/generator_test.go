package utils

import (
	"testing"

	"github.com/heritagegrand/banquet_manager/models"
)

func TestNextBookingIDMaxPlusOne(t *testing.T) {
	bookings := []models.Booking{
		{Season: "2025-26", BookingID: "HG/25-26/001"},
		{Season: "2025-26", BookingID: "HG/25-26/003"}, // 002 was cancelled and deleted
	}
	if got := NextBookingID(bookings, "2025-26"); got != "HG/25-26/004" {
		t.Fatalf("NextBookingID = %q, want HG/25-26/004", got)
	}
}

func TestNextBookingIDFirstOfSeason(t *testing.T) {
	bookings := []models.Booking{
		{Season: "2024-25", BookingID: "HG/24-25/017"},
	}
	if got := NextBookingID(bookings, "2025-26"); got != "HG/25-26/001" {
		t.Fatalf("NextBookingID = %q, want HG/25-26/001", got)
	}
}

func TestNextBookingIDIgnoresOtherSeasons(t *testing.T) {
	bookings := []models.Booking{
		{Season: "2024-25", BookingID: "HG/24-25/099"},
		{Season: "2025-26", BookingID: "HG/25-26/002"},
	}
	if got := NextBookingID(bookings, "2025-26"); got != "HG/25-26/003" {
		t.Fatalf("NextBookingID = %q, want HG/25-26/003", got)
	}
}

func TestNextBookingIDSkipsMalformed(t *testing.T) {
	bookings := []models.Booking{
		{Season: "2025-26", BookingID: "legacy-import"},
		{Season: "2025-26", BookingID: "HG/25-26/005"},
	}
	if got := NextBookingID(bookings, "2025-26"); got != "HG/25-26/006" {
		t.Fatalf("NextBookingID = %q, want HG/25-26/006", got)
	}
}

func TestNextBookingIDZeroPadding(t *testing.T) {
	bookings := []models.Booking{
		{Season: "2025-26", BookingID: "HG/25-26/099"},
	}
	if got := NextBookingID(bookings, "2025-26"); got != "HG/25-26/100" {
		t.Fatalf("NextBookingID = %q, want HG/25-26/100", got)
	}
}
