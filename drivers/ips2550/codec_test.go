package ips2550

import (
	"math"
	"testing"
)

func TestFineGainMultiplier(t *testing.T) {
	cases := []struct {
		code uint8
		want float64
	}{
		{0, 1.0},
		{8, 1.01},
		{127, 1.15875},
	}
	for _, c := range cases {
		if got := fineGainMultiplier(c.code); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("fineGainMultiplier(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestOffsetFraction(t *testing.T) {
	if got := offsetFraction(1, 0); got != 0 {
		t.Errorf("offsetFraction(+,0) = %v, want 0", got)
	}
	if got := offsetFraction(-1, 127); math.Abs(got-(-0.001905)) > 1e-9 {
		t.Errorf("offsetFraction(-,127) = %v, want -0.001905", got)
	}
	if got := offsetFraction(1, 127); math.Abs(got-0.001905) > 1e-9 {
		t.Errorf("offsetFraction(+,127) = %v, want 0.001905", got)
	}
}

func TestBiasMicroAmps(t *testing.T) {
	cases := []struct {
		code uint8
		want float64
	}{
		{0x00, 0},
		{0x01, 0.5},
		{0x3F, 31.5},   // exponent 0, full base
		{0x40, 0},      // exponent 1, base 0
		{0x7F, 126},    // exponent 1, full base
		{0xFF, 2016.0}, // exponent 3, full base
	}
	for _, c := range cases {
		if got := biasMicroAmps(c.code); got != c.want {
			t.Errorf("biasMicroAmps(%#x) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestTxFrequencyHz(t *testing.T) {
	if got := txFrequencyHz(1000); got != 20_000_000.0 {
		t.Errorf("txFrequencyHz(1000) = %v, want 20 MHz", got)
	}
	if got := txFrequencyHz(0); got != 0 {
		t.Errorf("txFrequencyHz(0) = %v, want 0", got)
	}
}
