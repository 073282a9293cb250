package models

import "testing"

func TestTierFromRate(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{250000, TierDiamond},
		{180000, TierDiamond}, // threshold is inclusive
		{179999, TierGold},
		{145000, TierGold},
		{144999, TierSilver},
		{90000, TierSilver},
		{0, TierSilver},
	}
	for _, c := range cases {
		if got := TierFromRate(c.rate); got != c.want {
			t.Errorf("TierFromRate(%v) = %s, want %s", c.rate, got, c.want)
		}
	}
}

func TestServiceSelectionsRoundTrip(t *testing.T) {
	original := ServiceSelections{
		"valet_parking": true,
		"guest_count":   float64(400),
	}

	raw, err := original.Value()
	if err != nil {
		t.Fatal(err)
	}

	var scanned ServiceSelections
	if err := scanned.Scan(raw); err != nil {
		t.Fatal(err)
	}
	if scanned["valet_parking"] != true || scanned["guest_count"] != float64(400) {
		t.Fatalf("round trip lost data: %+v", scanned)
	}
}

func TestServiceSelectionsScanNil(t *testing.T) {
	var s ServiceSelections
	if err := s.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if s == nil {
		t.Fatal("nil column must scan to an empty map")
	}
}
