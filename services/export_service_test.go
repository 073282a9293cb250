package services

import (
	"strings"
	"testing"
)

func TestToCSVQuoting(t *testing.T) {
	csv := ToCSV(
		[]string{"Date", "Description", "Amount"},
		[][]string{
			{"2025-05-10", "Payment from Sharma", "100000"},
			{"2025-06-01", `Decor "Royal" setup, hall A`, "8000"},
		},
	)

	lines := strings.Split(csv, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "Date,Description,Amount" {
		t.Fatalf("header row = %q", lines[0])
	}
	if lines[1] != `"2025-05-10","Payment from Sharma","100000"` {
		t.Fatalf("row 1 = %q", lines[1])
	}
	// embedded quotes double, commas stay inside the quoted cell
	if lines[2] != `"2025-06-01","Decor ""Royal"" setup, hall A","8000"` {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestToCSVNoRows(t *testing.T) {
	csv := ToCSV([]string{"Metric", "Value"}, nil)
	if csv != "Metric,Value" {
		t.Fatalf("header-only export = %q", csv)
	}
}
