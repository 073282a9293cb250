package jobs

import (
	"log"

	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/services"
)

// ReconcileExpenseRollups recomputes every booking's cached expense total
// from the full expense set and persists any drift. The same recompute runs
// inline after each expense mutation; this nightly pass catches totals left
// stale by writes that failed mid-flight.
func ReconcileExpenseRollups() {
	log.Println("Running job: ReconcileExpenseRollups...")

	fixed, err := services.SyncBookingExpenses(database.DB)
	if err != nil {
		log.Printf("Error reconciling expense roll-ups: %v", err)
		return
	}

	if fixed == 0 {
		log.Println("Expense roll-ups already consistent.")
		return
	}
	log.Printf("Reconciled expense roll-up for %d booking(s).", fixed)
}
