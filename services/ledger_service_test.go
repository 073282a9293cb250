package services

import (
	"testing"
	"time"

	"github.com/heritagegrand/banquet_manager/models"
)

func sampleBookings() []models.Booking {
	return []models.Booking{
		{
			BookingID:  "HG/25-26/001",
			ClientName: "Sharma",
			Payments: []models.Payment{
				{Amount: 100000, Type: models.PaymentReceived, Method: models.MethodBank, Date: day(2025, time.May, 10)},
				{Amount: 20000, Type: models.PaymentReverted, Method: models.MethodBank, Date: day(2025, time.June, 1), Notes: strPtr("double entry")},
			},
		},
		{
			BookingID:  "HG/25-26/002",
			ClientName: "Verma",
			Payments: []models.Payment{
				{Amount: 50000, Type: models.PaymentReceived, Method: models.MethodCash, Date: day(2025, time.May, 10)},
			},
		},
	}
}

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{
			Category: "Catering", Vendor: "Gupta Caterers", Amount: 30000,
			Type: models.ExpensePaid, PaymentMethod: models.MethodCash,
			ExpenseDate: day(2025, time.May, 10), BookingRef: strPtr("HG/25-26/001"),
		},
		{
			Category: "Decoration", Vendor: "Floral Art", Amount: 8000,
			Type: models.ExpenseReverted, PaymentMethod: models.MethodBank,
			ExpenseDate: day(2025, time.July, 2), Notes: strPtr("order cancelled"),
		},
	}
}

func TestBuildTransactionsMapping(t *testing.T) {
	txns := BuildTransactions(sampleBookings(), sampleExpenses())
	if len(txns) != 5 {
		t.Fatalf("got %d transactions, want 5", len(txns))
	}

	byDesc := make(map[string]Transaction)
	for _, tx := range txns {
		byDesc[tx.Description] = tx
	}

	received := byDesc["Payment from Sharma"]
	if received.Type != TxnIncome || received.Amount != 100000 {
		t.Fatalf("received payment mapped wrong: %+v", received)
	}

	reverted, ok := byDesc["Payment Reverted to Sharma (Reason: double entry)"]
	if !ok || reverted.Type != TxnExpense {
		t.Fatalf("reverted payment mapped wrong: %+v", reverted)
	}

	paid := byDesc["Catering: Gupta Caterers"]
	if paid.Type != TxnExpense || paid.BookingID != "HG/25-26/001" {
		t.Fatalf("paid expense mapped wrong: %+v", paid)
	}

	revExp, ok := byDesc["Decoration: Floral Art (Revert Reason: order cancelled)"]
	if !ok || revExp.Type != TxnIncome {
		t.Fatalf("reverted expense mapped wrong: %+v", revExp)
	}
}

func TestBuildTransactionsStableOrder(t *testing.T) {
	txns := BuildTransactions(sampleBookings(), sampleExpenses())

	// three entries share 2025-05-10: two payments, then the catering expense
	sameDay := make([]Transaction, 0, 3)
	for _, tx := range txns {
		if tx.Date.Equal(day(2025, time.May, 10)) {
			sameDay = append(sameDay, tx)
		}
	}
	if len(sameDay) != 3 {
		t.Fatalf("got %d same-day entries, want 3", len(sameDay))
	}
	if sameDay[2].Category != "Catering" {
		t.Fatalf("expense must sort after same-day payments, got %+v", sameDay[2])
	}

	for i := 1; i < len(txns); i++ {
		if txns[i].Date.Before(txns[i-1].Date) {
			t.Fatalf("transactions out of date order at index %d", i)
		}
	}
}

func TestSeasonWindowBoundaries(t *testing.T) {
	start, end, err := SeasonWindow("2025-26")
	if err != nil {
		t.Fatal(err)
	}

	in := []time.Time{day(2025, time.April, 1), day(2026, time.March, 31)}
	out := []time.Time{day(2025, time.March, 31), day(2026, time.April, 1)}

	for _, d := range in {
		if d.Before(start) || d.After(end) {
			t.Fatalf("%s should fall inside 2025-26", d.Format("2006-01-02"))
		}
	}
	for _, d := range out {
		if !d.Before(start) && !d.After(end) {
			t.Fatalf("%s should fall outside 2025-26", d.Format("2006-01-02"))
		}
	}
}

func TestSeasonWindowRejectsGarbage(t *testing.T) {
	if _, _, err := SeasonWindow("not-a-season"); err == nil {
		t.Fatal("expected error for malformed season key")
	}
}

func TestDaybookRunningBalance(t *testing.T) {
	txns := FilterTransactions(
		BuildTransactions(sampleBookings(), sampleExpenses()),
		LedgerFilter{Season: "2025-26"},
	)
	lines := Daybook(txns)
	if len(lines) == 0 {
		t.Fatal("empty daybook")
	}

	var net float64
	for _, tx := range txns {
		if tx.Type == TxnIncome {
			net += tx.Amount
		} else {
			net -= tx.Amount
		}
	}
	last := lines[len(lines)-1].RunningBalance
	if last != net {
		t.Fatalf("final balance %v != net of window %v", last, net)
	}
	// 100000 + 50000 - 20000 - 30000 + 8000
	if last != 108000 {
		t.Fatalf("final balance = %v, want 108000", last)
	}
}

func TestCashbookBankbookPartition(t *testing.T) {
	txns := FilterTransactions(
		BuildTransactions(sampleBookings(), sampleExpenses()),
		LedgerFilter{Season: "2025-26"},
	)
	cash := Cashbook(txns)
	bank := Bankbook(txns)

	if len(cash)+len(bank) != len(txns) {
		t.Fatalf("partition broken: %d cash + %d bank != %d total", len(cash), len(bank), len(txns))
	}
	for _, l := range cash {
		if l.PaymentMethod != models.MethodCash {
			t.Fatalf("non-cash entry in cashbook: %+v", l.Transaction)
		}
	}
	for _, l := range bank {
		if l.PaymentMethod == models.MethodCash {
			t.Fatalf("cash entry in bankbook: %+v", l.Transaction)
		}
	}
}

func TestFilterTransactionsWindowAndSearch(t *testing.T) {
	all := BuildTransactions(sampleBookings(), sampleExpenses())

	from := day(2025, time.June, 1)
	narrowed := FilterTransactions(all, LedgerFilter{Season: "2025-26", From: &from})
	for _, tx := range narrowed {
		if tx.Date.Before(from) {
			t.Fatalf("entry before From survived: %+v", tx)
		}
	}

	found := FilterTransactions(all, LedgerFilter{Season: "2025-26", Search: "hg/25-26/002"})
	if len(found) != 1 || found[0].BookingID != "HG/25-26/002" {
		t.Fatalf("search by booking id failed: %+v", found)
	}

	outside := FilterTransactions(all, LedgerFilter{Season: "2024-25"})
	if len(outside) != 0 {
		t.Fatalf("prior season should be empty, got %d entries", len(outside))
	}
}

func TestSubLedgersAndTotal(t *testing.T) {
	txns := BuildTransactions(sampleBookings(), sampleExpenses())

	catering := CategoryLedger(txns, "Catering")
	if len(catering) != 1 || catering[0].Vendor != "Gupta Caterers" {
		t.Fatalf("category ledger wrong: %+v", catering)
	}
	if got := LedgerTotal(catering); got != 30000 {
		t.Fatalf("category total = %v, want 30000", got)
	}

	// reverted expenses are income-typed, so the Decoration ledger stays empty
	if deco := CategoryLedger(txns, "Decoration"); len(deco) != 0 {
		t.Fatalf("reverted expense leaked into category ledger: %+v", deco)
	}

	vendor := VendorLedger(txns, "Gupta Caterers")
	if len(vendor) != 1 {
		t.Fatalf("vendor ledger wrong: %+v", vendor)
	}
}
