package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/heritagegrand/banquet_manager/models"
)

// Transaction is the normalized, derived view merging payments and expenses
// into one chronological sequence. It is never persisted.
type Transaction struct {
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	BookingID     string    `json:"booking_id,omitempty"`
	Type          string    `json:"type"` // Income | Expense
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Vendor        string    `json:"vendor,omitempty"`
	Category      string    `json:"category,omitempty"`
}

const (
	TxnIncome  = "Income"
	TxnExpense = "Expense"
)

// LedgerLine is a transaction annotated with the running balance at that
// point of the filtered window.
type LedgerLine struct {
	Transaction
	RunningBalance float64 `json:"running_balance"`
}

// BuildTransactions flattens every booking's payments and the whole expense
// set into a single date-ascending sequence. A received payment reports as
// income and a reverted one as an expense; a paid expense reports as an
// expense and a reverted one as income. The sort is stable, so entries on
// the same date keep construction order: payments before expenses.
func BuildTransactions(bookings []models.Booking, expenses []models.Expense) []Transaction {
	txns := make([]Transaction, 0, len(expenses))

	for _, b := range bookings {
		for _, p := range b.Payments {
			t := Transaction{
				Date:          p.Date,
				BookingID:     b.BookingID,
				Amount:        p.Amount,
				PaymentMethod: p.Method,
			}
			if p.Type == models.PaymentReceived {
				t.Type = TxnIncome
				t.Description = fmt.Sprintf("Payment from %s", b.ClientName)
			} else {
				t.Type = TxnExpense
				t.Description = fmt.Sprintf("Payment Reverted to %s", b.ClientName)
				if p.Notes != nil && *p.Notes != "" {
					t.Description += fmt.Sprintf(" (Reason: %s)", *p.Notes)
				}
			}
			txns = append(txns, t)
		}
	}

	for _, e := range expenses {
		t := Transaction{
			Date:          e.ExpenseDate,
			Description:   fmt.Sprintf("%s: %s", e.Category, e.Vendor),
			Amount:        e.Amount,
			PaymentMethod: e.PaymentMethod,
			Vendor:        e.Vendor,
			Category:      e.Category,
		}
		if e.BookingRef != nil {
			t.BookingID = *e.BookingRef
		}
		if e.Type == models.ExpensePaid {
			t.Type = TxnExpense
		} else {
			t.Type = TxnIncome
			if e.Notes != nil && *e.Notes != "" {
				t.Description += fmt.Sprintf(" (Revert Reason: %s)", *e.Notes)
			}
		}
		txns = append(txns, t)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})
	return txns
}

// SeasonWindow maps a "YYYY-YY" season key onto its financial-year calendar
// window: April 1 of the start year through March 31 of the next, inclusive.
func SeasonWindow(season string) (time.Time, time.Time, error) {
	parts := strings.SplitN(season, "-", 2)
	startYear, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid season %q", season)
	}
	start := time.Date(startYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, time.March, 31, 23, 59, 59, 999999999, time.UTC)
	return start, end, nil
}

// LedgerFilter narrows the transaction sequence before any ledger is built.
// Season is always applied; From/To further restrict within it and Search
// matches booking id or description, case-insensitively.
type LedgerFilter struct {
	Season string
	From   *time.Time
	To     *time.Time
	Search string
}

func FilterTransactions(txns []Transaction, f LedgerFilter) []Transaction {
	start, end, err := SeasonWindow(f.Season)
	if err != nil {
		return nil
	}
	search := strings.ToLower(f.Search)

	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		if f.From != nil && t.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && t.Date.After(*f.To) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.BookingID), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Daybook annotates the filtered sequence with a running balance seeded at
// zero for the window; income adds, expense subtracts. No carry-forward from
// prior periods.
func Daybook(txns []Transaction) []LedgerLine {
	var balance float64
	lines := make([]LedgerLine, 0, len(txns))
	for _, t := range txns {
		if t.Type == TxnIncome {
			balance += t.Amount
		} else {
			balance -= t.Amount
		}
		lines = append(lines, LedgerLine{Transaction: t, RunningBalance: balance})
	}
	return lines
}

// Cashbook is the daybook restricted to cash transactions.
func Cashbook(txns []Transaction) []LedgerLine {
	cash := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.PaymentMethod == models.MethodCash {
			cash = append(cash, t)
		}
	}
	return Daybook(cash)
}

// Bankbook is the daybook restricted to every non-cash method (card, UPI and
// bank transfers collectively).
func Bankbook(txns []Transaction) []LedgerLine {
	bank := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.PaymentMethod != models.MethodCash {
			bank = append(bank, t)
		}
	}
	return Daybook(bank)
}

// CategoryLedger returns the expense-type entries for one category name.
// Reverted expenses surface as income entries and are therefore excluded
// here; the filter runs before any summing.
func CategoryLedger(txns []Transaction, category string) []Transaction {
	out := make([]Transaction, 0)
	for _, t := range txns {
		if t.Type == TxnExpense && t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// VendorLedger is CategoryLedger keyed by vendor name instead.
func VendorLedger(txns []Transaction, vendor string) []Transaction {
	out := make([]Transaction, 0)
	for _, t := range txns {
		if t.Type == TxnExpense && t.Vendor == vendor {
			out = append(out, t)
		}
	}
	return out
}

// LedgerTotal sums an already-filtered sub-ledger, expense entries positive
// and income entries negative.
func LedgerTotal(txns []Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.Type == TxnExpense {
			total += t.Amount
		} else {
			total -= t.Amount
		}
	}
	return total
}
