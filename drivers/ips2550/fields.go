package ips2550

// Typed configuration fields. Every setter validates its domain before any
// bus traffic and fans out to the shadow and primary registers; getters read
// the primary register only and never delay.

// VoltageLevel selects the supply voltage the AFE is trimmed for.
type VoltageLevel uint8

const (
	VDD3V3 VoltageLevel = 0
	VDD5V0 VoltageLevel = 1
)

// OutputMode selects the receive output stage configuration.
type OutputMode uint8

const (
	ModeDifferential OutputMode = 0
	ModeSingleEnded  OutputMode = 1
)

// ---------------- Supply voltage ----------------

func (d *Device) SetSupplyVoltage(level VoltageLevel) error {
	if level != VDD3V3 && level != VDD5V0 {
		return ErrVoltageLevel
	}
	return d.writePaired(regSupplyCfg, fieldVal(uint16(level), maskSupplyVDD), maskSupplyVDD)
}

func (d *Device) SupplyLevel() (VoltageLevel, error) {
	v, err := d.ReadMasked(regSupplyCfg, maskSupplyVDD)
	return VoltageLevel(v), err
}

// SupplyVoltage_V returns the configured supply in volts (3.3 or 5.0).
func (d *Device) SupplyVoltage_V() (float64, error) {
	level, err := d.SupplyLevel()
	if err != nil {
		return 0, err
	}
	if level == VDD5V0 {
		return 5.0, nil
	}
	return 3.3, nil
}

// ---------------- Output mode ----------------

func (d *Device) SetOutputMode(mode OutputMode) error {
	if mode != ModeDifferential && mode != ModeSingleEnded {
		return ErrOutputMode
	}
	return d.writePaired(regSystemCfg, fieldVal(uint16(mode), maskOutputMode), maskOutputMode)
}

func (d *Device) OutputMode() (OutputMode, error) {
	v, err := d.ReadMasked(regSystemCfg, maskOutputMode)
	return OutputMode(v), err
}

// ---------------- Automatic gain control ----------------

// SetAGC enables or disables automatic gain control. The hardware bit is
// inverted: 0 = enabled.
func (d *Device) SetAGC(enabled bool) error {
	var bit uint16
	if !enabled {
		bit = 1
	}
	return d.writePaired(regSystemCfg, fieldVal(bit, maskAGCDisable), maskAGCDisable)
}

func (d *Device) AGCEnabled() (bool, error) {
	v, err := d.ReadMasked(regSystemCfg, maskAGCDisable)
	return v == 0, err
}

// ---------------- Master gain ----------------

func (d *Device) SetMasterGainCode(code uint8) error {
	if code > 95 {
		return ErrGainCode
	}
	return d.writePaired(regMasterGain, fieldVal(uint16(code), maskGainCode), maskGainCode)
}

func (d *Device) MasterGainCode() (uint8, error) {
	v, err := d.ReadMasked(regMasterGain, maskGainCode)
	return uint8(v), err
}

// MasterGain returns the table multiplier for the stored gain code, without
// the boost factor. A stored code beyond the table (possible on
// uninitialized hardware; the field is 7 bits wide) returns ErrGainTable.
func (d *Device) MasterGain() (float64, error) {
	code, err := d.MasterGainCode()
	if err != nil {
		return 0, err
	}
	if int(code) >= len(gainFactors) {
		return 0, ErrGainTable
	}
	return gainFactors[code], nil
}

// SetMasterGainBoost toggles the fixed 2x multiplier on top of the table
// gain.
func (d *Device) SetMasterGainBoost(enabled bool) error {
	var bit uint16
	if enabled {
		bit = 1
	}
	return d.writePaired(regMasterGain, fieldVal(bit, maskGainBoost), maskGainBoost)
}

func (d *Device) MasterGainBoost() (bool, error) {
	v, err := d.ReadMasked(regMasterGain, maskGainBoost)
	return v == 1, err
}

// effectiveGain is the table gain with the boost applied.
func (d *Device) effectiveGain() (float64, error) {
	gain, err := d.MasterGain()
	if err != nil {
		return 0, err
	}
	boost, err := d.MasterGainBoost()
	if err != nil {
		return 0, err
	}
	if boost {
		gain *= 2
	}
	return gain, nil
}

// ---------------- Fine gain ----------------

func (d *Device) SetFineGain1(code uint8) error { return d.setFineGain(regFineGain1, code) }
func (d *Device) SetFineGain2(code uint8) error { return d.setFineGain(regFineGain2, code) }

func (d *Device) setFineGain(reg uint8, code uint8) error {
	if code > 0x7F {
		return ErrFineGainCode
	}
	return d.writePaired(reg, fieldVal(uint16(code), maskFineGain), maskFineGain)
}

func (d *Device) FineGain1Code() (uint8, error) {
	v, err := d.ReadMasked(regFineGain1, maskFineGain)
	return uint8(v), err
}

func (d *Device) FineGain2Code() (uint8, error) {
	v, err := d.ReadMasked(regFineGain2, maskFineGain)
	return uint8(v), err
}

// FineGain1 returns the channel 1 trim multiplier.
func (d *Device) FineGain1() (float64, error) {
	code, err := d.FineGain1Code()
	return fineGainMultiplier(code), err
}

// FineGain2 returns the channel 2 trim multiplier.
func (d *Device) FineGain2() (float64, error) {
	code, err := d.FineGain2Code()
	return fineGainMultiplier(code), err
}

// ---------------- Offsets ----------------

// SetOffset1 writes the channel 1 offset trim. sign < 0 selects the negative
// direction; magnitude is the 7-bit trim code.
func (d *Device) SetOffset1(sign int, magnitude uint8) error {
	return d.setOffset(regOffset1, sign, magnitude)
}

func (d *Device) SetOffset2(sign int, magnitude uint8) error {
	return d.setOffset(regOffset2, sign, magnitude)
}

func (d *Device) setOffset(reg uint8, sign int, magnitude uint8) error {
	if magnitude > offsetMagMax {
		return ErrOffsetCode
	}
	value := uint16(magnitude)
	if sign < 0 {
		value |= maskOffsetSign
	}
	return d.writePaired(reg, value, maskOffsetSign|maskOffsetMag)
}

// readOffset decodes sign and magnitude from one register read.
func (d *Device) readOffset(reg uint8) (sign int, magnitude uint8, err error) {
	payload, err := d.ReadRegister(reg)
	if err != nil {
		return 0, 0, err
	}
	sign = 1
	if payload&maskOffsetSign != 0 {
		sign = -1
	}
	return sign, uint8(payload & maskOffsetMag), nil
}

func (d *Device) Offset1Sign() (int, error) {
	sign, _, err := d.readOffset(regOffset1)
	return sign, err
}

func (d *Device) Offset1Code() (uint8, error) {
	_, mag, err := d.readOffset(regOffset1)
	return mag, err
}

func (d *Device) Offset2Sign() (int, error) {
	sign, _, err := d.readOffset(regOffset2)
	return sign, err
}

func (d *Device) Offset2Code() (uint8, error) {
	_, mag, err := d.readOffset(regOffset2)
	return mag, err
}

// Offset1Fraction returns the channel 1 offset as a signed fraction of the
// TX coil voltage.
func (d *Device) Offset1Fraction() (float64, error) {
	sign, mag, err := d.readOffset(regOffset1)
	if err != nil {
		return 0, err
	}
	return offsetFraction(sign, mag), nil
}

func (d *Device) Offset2Fraction() (float64, error) {
	sign, mag, err := d.readOffset(regOffset2)
	if err != nil {
		return 0, err
	}
	return offsetFraction(sign, mag), nil
}

// ---------------- TX current bias ----------------

// SetTxCurrentBias writes the 8-bit bias code. The full code space is valid.
func (d *Device) SetTxCurrentBias(code uint8) error {
	return d.writePaired(regTxBias, uint16(code), maskTxBias)
}

func (d *Device) TxCurrentBiasCode() (uint8, error) {
	v, err := d.ReadMasked(regTxBias, maskTxBias)
	return uint8(v), err
}

// TxCurrentBias_uA returns the decoded bias current in µA.
func (d *Device) TxCurrentBias_uA() (float64, error) {
	code, err := d.TxCurrentBiasCode()
	return biasMicroAmps(code), err
}

// ---------------- Sub-address ----------------

// SetSubAddress writes the 4-bit bus sub-address. Takes effect on the next
// power cycle.
func (d *Device) SetSubAddress(code uint8) error {
	if code > 0x0F {
		return ErrSubAddress
	}
	return d.writePaired(regSystemCfg, fieldVal(uint16(code), maskSubAddress), maskSubAddress)
}

func (d *Device) SubAddress() (uint8, error) {
	v, err := d.ReadMasked(regSystemCfg, maskSubAddress)
	return uint8(v), err
}

// ---------------- TX frequency (read-only) ----------------

func (d *Device) TxFrequencyCode() (uint16, error) {
	return d.ReadMasked(regTxFreq, maskTxFreq)
}

// TxFrequency_Hz returns the measured TX oscillator frequency.
func (d *Device) TxFrequency_Hz() (float64, error) {
	code, err := d.TxFrequencyCode()
	return txFrequencyHz(code), err
}
