package services

import (
	"github.com/heritagegrand/banquet_manager/models"
	"gorm.io/gorm"
)

// SyncBookingExpenses runs the total roll-up against the database: it loads
// the whole expense set, recomputes every booking's cached total and writes
// back the ones that changed, reporting how many drifted. Invoked after
// every expense mutation and by the nightly reconciliation job; safe to
// re-run at any time.
func SyncBookingExpenses(db *gorm.DB) (int, error) {
	var expenses []models.Expense
	if err := db.Find(&expenses).Error; err != nil {
		return 0, err
	}

	var bookings []models.Booking
	if err := db.Find(&bookings).Error; err != nil {
		return 0, err
	}

	totals := RollUpExpenses(expenses)
	var fixed int
	for _, b := range bookings {
		want := totals[b.BookingID]
		if b.Expenses == want {
			continue
		}
		err := db.Model(&models.Booking{}).
			Where("id = ?", b.ID).
			Update("expenses", want).Error
		if err != nil {
			return fixed, err
		}
		fixed++
	}
	return fixed, nil
}
