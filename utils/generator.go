package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heritagegrand/banquet_manager/models"
)

const bookingIDPrefix = "HG"

// NextBookingID allocates the next human booking id for a season, formatted
// HG/<YY-YY>/<NNN>, e.g. HG/25-26/004 for season "2025-26". It scans the
// season's existing ids for the highest trailing sequence number and
// increments it (max+1, not count+1), so cancelled bookings never free their
// numbers. Callers pass every booking; other seasons are ignored.
func NextBookingID(bookings []models.Booking, season string) string {
	maxSeq := 0
	for _, b := range bookings {
		if b.Season != season {
			continue
		}
		parts := strings.Split(b.BookingID, "/")
		if len(parts) == 0 {
			continue
		}
		seq, err := strconv.Atoi(parts[len(parts)-1])
		if err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s/%s/%03d", bookingIDPrefix, shortSeason(season), maxSeq+1)
}

// shortSeason compresses "2025-26" to "25-26"; already-short keys pass
// through unchanged.
func shortSeason(season string) string {
	parts := strings.SplitN(season, "-", 2)
	if len(parts) == 2 && len(parts[0]) == 4 {
		return parts[0][2:] + "-" + parts[1]
	}
	return season
}
