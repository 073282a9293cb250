package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/database"
	"github.com/heritagegrand/banquet_manager/models"
	"github.com/heritagegrand/banquet_manager/services"
)

// ledgerFilterFromQuery builds the common transaction filter from query
// params: ?season= (defaults to the current season), ?from=, ?to= and
// ?search=.
func ledgerFilterFromQuery(c *fiber.Ctx) (services.LedgerFilter, error) {
	filter := services.LedgerFilter{
		Season: c.Query("season"),
		Search: c.Query("search"),
	}
	if filter.Season == "" {
		filter.Season = CurrentSeason()
	}
	if _, _, err := services.SeasonWindow(filter.Season); err != nil {
		return filter, fmt.Errorf("invalid season %q", filter.Season)
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, fmt.Errorf("invalid from date %q", from)
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, fmt.Errorf("invalid to date %q", to)
		}
		// include the whole day
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	return filter, nil
}

func loadFilteredTransactions(c *fiber.Ctx) ([]services.Transaction, error) {
	filter, err := ledgerFilterFromQuery(c)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := database.DB.Preload("Payments").Find(&bookings).Error; err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := database.DB.Find(&expenses).Error; err != nil {
		return nil, err
	}

	txns := services.BuildTransactions(bookings, expenses)
	return services.FilterTransactions(txns, filter), nil
}

func GetDaybook(c *fiber.Ctx) error {
	txns, err := loadFilteredTransactions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(services.Daybook(txns))
}

func GetCashbook(c *fiber.Ctx) error {
	txns, err := loadFilteredTransactions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(services.Cashbook(txns))
}

func GetBankbook(c *fiber.Ctx) error {
	txns, err := loadFilteredTransactions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(services.Bankbook(txns))
}

// GetSubLedger serves the category/vendor ledger: ?category= or ?vendor=
// selects the sub-ledger; the response reports the entries and their summed
// total rather than a running balance.
func GetSubLedger(c *fiber.Ctx) error {
	category := c.Query("category")
	vendor := c.Query("vendor")
	if (category == "") == (vendor == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Provide exactly one of category or vendor"})
	}

	txns, err := loadFilteredTransactions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var entries []services.Transaction
	if category != "" {
		entries = services.CategoryLedger(txns, category)
	} else {
		entries = services.VendorLedger(txns, vendor)
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"total":   services.LedgerTotal(entries),
	})
}

var ledgerTitles = map[string]string{
	"daybook":  "Daybook",
	"cashbook": "Cashbook",
	"bankbook": "Bank Book",
}

// ExportLedger downloads one of the running-balance ledgers as CSV or PDF:
// /accounts/:book/export?format=csv|pdf plus the usual filters.
func ExportLedger(c *fiber.Ctx) error {
	book := c.Params("book")
	title, ok := ledgerTitles[book]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown ledger"})
	}

	txns, err := loadFilteredTransactions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var lines []services.LedgerLine
	switch book {
	case "cashbook":
		lines = services.Cashbook(txns)
	case "bankbook":
		lines = services.Bankbook(txns)
	default:
		lines = services.Daybook(txns)
	}

	headers := []string{"Date", "Description", "Income", "Expense", "Balance", "Payment Method", "Booking ID"}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		income, expense := "0", "0"
		if l.Type == services.TxnIncome {
			income = formatAmount(l.Amount)
		} else {
			expense = formatAmount(l.Amount)
		}
		ref := l.BookingID
		if ref == "" {
			ref = "N/A"
		}
		rows = append(rows, []string{
			l.Date.Format("02 Jan 2006"), l.Description, income, expense,
			formatAmount(l.RunningBalance), l.PaymentMethod, ref,
		})
	}

	return sendTabular(c, title, headers, rows)
}

// ExportSubLedger downloads a category/vendor ledger.
func ExportSubLedger(c *fiber.Ctx) error {
	category := c.Query("category")
	vendor := c.Query("vendor")
	if (category == "") == (vendor == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Provide exactly one of category or vendor"})
	}

	txns, err := loadFilteredTransactions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var entries []services.Transaction
	var title string
	if category != "" {
		entries = services.CategoryLedger(txns, category)
		title = fmt.Sprintf("Ledger for category: %s", category)
	} else {
		entries = services.VendorLedger(txns, vendor)
		title = fmt.Sprintf("Ledger for vendor: %s", vendor)
	}

	headers := []string{"Date", "Description", "Amount", "Payment Method", "Booking ID"}
	rows := make([][]string, 0, len(entries))
	for _, t := range entries {
		ref := t.BookingID
		if ref == "" {
			ref = "N/A"
		}
		rows = append(rows, []string{
			t.Date.Format("02 Jan 2006"), t.Description,
			formatAmount(t.Amount), t.PaymentMethod, ref,
		})
	}

	return sendTabular(c, title, headers, rows)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sendTabular renders a report either as a CSV attachment or a printed PDF,
// depending on ?format= (csv default).
func sendTabular(c *fiber.Ctx, title string, headers []string, rows [][]string) error {
	if c.Query("format") == "pdf" {
		html, err := services.RenderReportHTML(title, headers, rows)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render report"})
		}
		pdf, err := services.PDFFromHTML(html)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", slugify(title)+".pdf"))
		return c.Send(pdf)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", slugify(title)+".csv"))
	return c.SendString(services.ToCSV(headers, rows))
}

func slugify(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r == ' ' || r == ':':
			out = append(out, '_')
		case r == '/':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
