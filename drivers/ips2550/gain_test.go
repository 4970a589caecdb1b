package ips2550

import "testing"

func TestGainTableShape(t *testing.T) {
	if len(gainFactors) != 96 {
		t.Fatalf("gain table has %d entries, want 96", len(gainFactors))
	}
	for i := 1; i < len(gainFactors); i++ {
		if gainFactors[i] <= gainFactors[i-1] {
			t.Errorf("gain table not strictly increasing at %d: %v <= %v",
				i, gainFactors[i], gainFactors[i-1])
		}
	}
}

func TestGainTableAnchors(t *testing.T) {
	anchors := map[int]float64{
		0:  2.0,
		16: 4.0,
		50: 17.45,
		80: 64.0,
		95: 123.24,
	}
	for code, want := range anchors {
		if got := gainFactors[code]; got != want {
			t.Errorf("gainFactors[%d] = %v, want %v", code, got, want)
		}
	}
}
