package ips2550

// Physical-unit conversions for trim and bias codes. Scale constants are
// pinned to the datasheet.

const (
	// Fine gain: multiplier = 1 + code * 0.125%.
	fineGainStep = 0.125 / 100.0
	// Offset trim: fraction of the TX coil voltage = sign * code * 0.0015%.
	offsetStep = 0.0015 / 100.0
	// TX current bias LSB in µA.
	biasStep_uA = 0.5
	// TX frequency counter LSB in Hz.
	txFreqStep_Hz = 20_000.0

	offsetMagMax = 0x7F
)

func fineGainMultiplier(code uint8) float64 {
	return 1.0 + float64(code)*fineGainStep
}

func offsetFraction(sign int, code uint8) float64 {
	f := float64(code) * offsetStep
	if sign < 0 {
		return -f
	}
	return f
}

// biasMicroAmps decodes the 8-bit bias code: bits 6-7 are a multiplier
// exponent, bits 0-5 the base.
func biasMicroAmps(code uint8) float64 {
	mul := code >> 6
	base := code & 0x3F
	return float64(uint32(1)<<(2*mul)) * float64(base) * biasStep_uA
}

func txFrequencyHz(code uint16) float64 {
	return float64(code) * txFreqStep_Hz
}
