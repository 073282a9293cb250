package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/heritagegrand/banquet_manager/models"
)

// SeasonStats is the dashboard block for one season.
type SeasonStats struct {
	TotalBookings  int     `json:"total_bookings"`
	UpcomingCount  int     `json:"upcoming_count"`
	Revenue        float64 `json:"revenue"`
	TotalPaid      float64 `json:"total_paid"`
	PendingBalance float64 `json:"pending_balance"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetProfit      float64 `json:"net_profit"`
}

// ComputeSeasonStats aggregates one season's bookings and expenses. Revenue
// and collections only count non-cancelled bookings. Season membership for a
// booking-linked expense follows its booking; a general expense matches when
// its calendar year equals the season's start year or the one after. That
// year heuristic is looser than the ledger's April–March window and is kept
// as-is so reported totals stay consistent with historical reports.
func ComputeSeasonStats(bookings []models.Booking, expenses []models.Expense, season string) SeasonStats {
	var stats SeasonStats

	seasonIDs := make(map[string]bool)
	for _, b := range bookings {
		if b.Season != season {
			continue
		}
		stats.TotalBookings++
		seasonIDs[b.BookingID] = true

		if b.Status == models.StatusUpcoming {
			stats.UpcomingCount++
		}
		if b.Status != models.StatusCancelled {
			stats.Revenue += RateAfterDiscount(b)
			stats.TotalPaid += TotalPaid(b.Payments)
		}
	}
	stats.PendingBalance = stats.Revenue - stats.TotalPaid

	startYear, _ := strconv.Atoi(strings.SplitN(season, "-", 2)[0])
	for _, e := range expenses {
		if e.BookingRef != nil && *e.BookingRef != "" {
			if !seasonIDs[*e.BookingRef] {
				continue
			}
		} else {
			year := e.ExpenseDate.Year()
			if year != startYear && year != startYear+1 {
				continue
			}
		}
		if e.Type == models.ExpensePaid {
			stats.TotalExpenses += e.Amount
		} else {
			stats.TotalExpenses -= e.Amount
		}
	}
	stats.NetProfit = stats.Revenue - stats.TotalExpenses

	return stats
}

// GlobalAnalytics covers all seasons.
type GlobalAnalytics struct {
	TotalBookings   int            `json:"total_bookings"`
	Revenue         float64        `json:"revenue"`
	Profit          float64        `json:"profit"`
	BookingExpenses float64        `json:"booking_expenses"`
	GeneralExpenses float64        `json:"general_expenses"`
	AvgBookingValue float64        `json:"avg_booking_value"`
	ProfitMargin    float64        `json:"profit_margin"`
	BookingsByTier  map[string]int `json:"bookings_by_tier"`
}

func ComputeGlobalAnalytics(bookings []models.Booking, expenses []models.Expense) GlobalAnalytics {
	analytics := GlobalAnalytics{
		TotalBookings:  len(bookings),
		BookingsByTier: make(map[string]int),
	}

	var validCount int
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		validCount++
		analytics.Revenue += RateAfterDiscount(b)
		analytics.BookingsByTier[b.Tier]++
	}

	for _, e := range expenses {
		amount := e.Amount
		if e.Type == models.ExpenseReverted {
			amount = -amount
		}
		if e.BookingRef != nil && *e.BookingRef != "" {
			analytics.BookingExpenses += amount
		} else {
			analytics.GeneralExpenses += amount
		}
	}

	analytics.Profit = analytics.Revenue - analytics.BookingExpenses - analytics.GeneralExpenses
	if validCount > 0 {
		analytics.AvgBookingValue = analytics.Revenue / float64(validCount)
	}
	if analytics.Revenue > 0 {
		analytics.ProfitMargin = analytics.Profit / analytics.Revenue * 100
	}

	return analytics
}

// AvailableSeasons is the sorted union of every booking's season and the
// venue's standing defaults, so pickers always offer the adjacent years.
func AvailableSeasons(bookings []models.Booking) []string {
	set := map[string]bool{
		"2024-25": true,
		"2025-26": true,
		"2026-27": true,
	}
	for _, b := range bookings {
		set[b.Season] = true
	}

	seasons := make([]string, 0, len(set))
	for s := range set {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)
	return seasons
}
