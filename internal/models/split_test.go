package models

import "testing"

func TestTipRates(t *testing.T) {
	got := TipRates()
	want := []TipRate{10, 15, 20, 25, 0}
	if len(got) != len(want) {
		t.Fatalf("TipRates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TipRates()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	got[0] = 99
	if TipRates()[0] != 10 {
		t.Error("TipRates() exposes its backing array")
	}
}

func TestTipRateValid(t *testing.T) {
	for _, r := range TipRates() {
		if !r.Valid() {
			t.Errorf("%v should be valid", r)
		}
	}
	for _, r := range []TipRate{-10, 5, 18, 30, 100} {
		if r.Valid() {
			t.Errorf("%v should not be valid", r)
		}
	}
	if DefaultTipRate.Index() != 2 {
		t.Errorf("default rate index = %d, want 2", DefaultTipRate.Index())
	}
}

func TestPartySizes(t *testing.T) {
	sizes := PartySizes()
	if len(sizes) != 99 {
		t.Fatalf("len(PartySizes()) = %d, want 99", len(sizes))
	}
	if sizes[0] != 2 || sizes[len(sizes)-1] != 100 {
		t.Errorf("PartySizes() spans %v..%v, want 2..100", sizes[0], sizes[len(sizes)-1])
	}
	for _, p := range sizes {
		if !p.Valid() {
			t.Errorf("%v should be valid", p)
		}
	}
	for _, p := range []PartySize{-1, 0, 1, 101} {
		if p.Valid() {
			t.Errorf("%v should not be valid", p)
		}
	}
	if DefaultPartySize != 2 {
		t.Errorf("DefaultPartySize = %v, want 2", DefaultPartySize)
	}
}
