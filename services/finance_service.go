package services

import (
	"github.com/heritagegrand/banquet_manager/models"
)

// TotalPaid nets a booking's payment ledger: received entries add, reverted
// entries subtract. A fully reverted ledger can go negative; callers must
// treat that as recorded debt, not clamp it.
func TotalPaid(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Type == models.PaymentReceived {
			total += p.Amount
		} else {
			total -= p.Amount
		}
	}
	return total
}

func RateAfterDiscount(b models.Booking) float64 {
	if b.Discount != nil {
		return b.Rate - *b.Discount
	}
	return b.Rate
}

// BalanceDue is what the client still owes. Only meaningful while the
// booking is not cancelled.
func BalanceDue(b models.Booking) float64 {
	return RateAfterDiscount(b) - TotalPaid(b.Payments)
}

// Profit for a live booking is the discounted rate less its expenses. Once
// cancelled, the rate no longer applies: profit is whatever was collected,
// less expenses and the refund.
func Profit(b models.Booking) float64 {
	if b.Status == models.StatusCancelled {
		refund := 0.0
		if b.RefundAmount != nil {
			refund = *b.RefundAmount
		}
		return TotalPaid(b.Payments) - b.Expenses - refund
	}
	return RateAfterDiscount(b) - b.Expenses
}

// RollUpExpenses recomputes every booking's cached expense total from the
// full expense set, keyed by human booking id. Expenses without a booking
// ref never contribute. The recompute is total rather than incremental;
// bookings absent from the result roll up to zero.
func RollUpExpenses(expenses []models.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		if e.BookingRef == nil || *e.BookingRef == "" {
			continue
		}
		if e.Type == models.ExpensePaid {
			totals[*e.BookingRef] += e.Amount
		} else {
			totals[*e.BookingRef] -= e.Amount
		}
	}
	return totals
}
