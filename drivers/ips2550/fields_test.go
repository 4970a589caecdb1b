package ips2550

import (
	"errors"
	"math"
	"testing"
)

func TestMasterGainRoundTrip(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	if err := d.SetMasterGainCode(50); err != nil {
		t.Fatalf("set gain code: %v", err)
	}
	code, err := d.MasterGainCode()
	if err != nil {
		t.Fatalf("read gain code: %v", err)
	}
	if code != 50 {
		t.Fatalf("gain code = %d, want 50", code)
	}
	gain, err := d.MasterGain()
	if err != nil {
		t.Fatalf("read gain: %v", err)
	}
	if gain != 17.45 {
		t.Fatalf("gain = %v, want 17.45", gain)
	}
}

func TestSettersRejectWithoutBusTraffic(t *testing.T) {
	cases := []struct {
		name string
		call func(d *Device) error
		want error
	}{
		{"gain code 96", func(d *Device) error { return d.SetMasterGainCode(96) }, ErrGainCode},
		{"fine gain 1 code 128", func(d *Device) error { return d.SetFineGain1(0x80) }, ErrFineGainCode},
		{"fine gain 2 code 255", func(d *Device) error { return d.SetFineGain2(0xFF) }, ErrFineGainCode},
		{"offset 1 magnitude 200", func(d *Device) error { return d.SetOffset1(1, 200) }, ErrOffsetCode},
		{"offset 2 magnitude 128", func(d *Device) error { return d.SetOffset2(-1, 128) }, ErrOffsetCode},
		{"sub-address 16", func(d *Device) error { return d.SetSubAddress(16) }, ErrSubAddress},
		{"voltage level 2", func(d *Device) error { return d.SetSupplyVoltage(VoltageLevel(2)) }, ErrVoltageLevel},
		{"output mode 5", func(d *Device) error { return d.SetOutputMode(OutputMode(5)) }, ErrOutputMode},
	}
	for _, c := range cases {
		chip := newFakeChip()
		d := newTestDevice(chip, nil, nil, nil, 1)
		if err := c.call(d); !errors.Is(err, c.want) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
		if chip.tx != 0 {
			t.Errorf("%s: %d bus transactions issued, want 0", c.name, chip.tx)
		}
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	if err := d.SetOffset1(-1, 127); err != nil {
		t.Fatalf("set offset 1: %v", err)
	}
	sign, err := d.Offset1Sign()
	if err != nil {
		t.Fatalf("offset sign: %v", err)
	}
	if sign != -1 {
		t.Fatalf("offset sign = %d, want -1", sign)
	}
	code, err := d.Offset1Code()
	if err != nil {
		t.Fatalf("offset code: %v", err)
	}
	if code != 127 {
		t.Fatalf("offset code = %d, want 127", code)
	}
	frac, err := d.Offset1Fraction()
	if err != nil {
		t.Fatalf("offset fraction: %v", err)
	}
	if math.Abs(frac-(-0.001905)) > 1e-9 {
		t.Fatalf("offset fraction = %v, want -0.001905", frac)
	}

	// Positive direction on channel 2.
	if err := d.SetOffset2(1, 64); err != nil {
		t.Fatalf("set offset 2: %v", err)
	}
	if sign, _ := d.Offset2Sign(); sign != 1 {
		t.Fatalf("offset 2 sign = %d, want +1", sign)
	}
	if frac, _ := d.Offset2Fraction(); math.Abs(frac-64*0.000015) > 1e-9 {
		t.Fatalf("offset 2 fraction = %v", frac)
	}
}

func TestTxCurrentBias(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	if err := d.SetTxCurrentBias(0xFF); err != nil {
		t.Fatalf("set bias: %v", err)
	}
	uA, err := d.TxCurrentBias_uA()
	if err != nil {
		t.Fatalf("read bias: %v", err)
	}
	if uA != 2016.0 {
		t.Fatalf("bias = %v uA, want 2016", uA)
	}
}

func TestTxFrequency(t *testing.T) {
	chip := newFakeChip()
	chip.regs[regTxFreq] = 1000
	d := newTestDevice(chip, nil, nil, nil, 1)

	hz, err := d.TxFrequency_Hz()
	if err != nil {
		t.Fatalf("read tx frequency: %v", err)
	}
	if hz != 20_000_000.0 {
		t.Fatalf("tx frequency = %v Hz, want 20 MHz", hz)
	}
}

func TestAGCInvertedLogic(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	if err := d.SetAGC(false); err != nil {
		t.Fatalf("disable agc: %v", err)
	}
	if chip.regs[regSystemCfg]&maskAGCDisable == 0 {
		t.Fatal("agc disable bit not set")
	}
	if on, _ := d.AGCEnabled(); on {
		t.Fatal("AGCEnabled = true after disable")
	}

	if err := d.SetAGC(true); err != nil {
		t.Fatalf("enable agc: %v", err)
	}
	if on, _ := d.AGCEnabled(); !on {
		t.Fatal("AGCEnabled = false after enable")
	}
}

func TestSupplyVoltage(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	if err := d.SetSupplyVoltage(VDD5V0); err != nil {
		t.Fatalf("set supply: %v", err)
	}
	v, err := d.SupplyVoltage_V()
	if err != nil {
		t.Fatalf("read supply: %v", err)
	}
	if v != 5.0 {
		t.Fatalf("supply = %v, want 5.0", v)
	}
	if err := d.SetSupplyVoltage(VDD3V3); err != nil {
		t.Fatalf("set supply: %v", err)
	}
	if v, _ := d.SupplyVoltage_V(); v != 3.3 {
		t.Fatalf("supply = %v, want 3.3", v)
	}
}

func TestMasterGainStoredCodeBeyondTable(t *testing.T) {
	chip := newFakeChip()
	chip.regs[regMasterGain] = 100 // uninitialized hardware
	d := newTestDevice(chip, nil, nil, nil, 1)

	if _, err := d.MasterGain(); !errors.Is(err, ErrGainTable) {
		t.Fatalf("err = %v, want ErrGainTable", err)
	}
}

func TestFineGainMultiplierReadback(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	if err := d.SetFineGain1(8); err != nil {
		t.Fatalf("set fine gain: %v", err)
	}
	mult, err := d.FineGain1()
	if err != nil {
		t.Fatalf("read fine gain: %v", err)
	}
	if math.Abs(mult-1.01) > 1e-12 {
		t.Fatalf("fine gain = %v, want 1.01", mult)
	}
}

func TestSubAddressRoundTrip(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	if err := d.SetSubAddress(0xA); err != nil {
		t.Fatalf("set sub-address: %v", err)
	}
	got, err := d.SubAddress()
	if err != nil {
		t.Fatalf("read sub-address: %v", err)
	}
	if got != 0xA {
		t.Fatalf("sub-address = %#x, want 0xa", got)
	}
	// Field occupies bits 4-7 of the payload.
	if chip.regs[regSystemCfg] != 0x00A0 {
		t.Fatalf("payload = %#x, want 0x00a0", chip.regs[regSystemCfg])
	}
}

func TestSnapshot(t *testing.T) {
	chip := newFakeChip()
	d := newTestDevice(chip, nil, nil, nil, 1)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(d.SetOutputMode(ModeDifferential))
	must(d.SetSupplyVoltage(VDD3V3))
	must(d.SetTxCurrentBias(0xFF))
	must(d.SetAGC(false))
	must(d.SetMasterGainBoost(true))
	must(d.SetMasterGainCode(50))
	must(d.SetOffset1(-1, 12))
	chip.regs[regTxFreq] = 1000

	s := d.Snapshot()
	if s.Supply_V != 3.3 || s.Mode != ModeDifferential || s.AGC {
		t.Fatalf("snapshot basics: %+v", s)
	}
	if s.GainCode != 50 || s.Gain != 17.45 || !s.GainBoost {
		t.Fatalf("snapshot gain: %+v", s)
	}
	if s.Offset1Sign != -1 || s.Offset1Code != 12 {
		t.Fatalf("snapshot offset: %+v", s)
	}
	if s.Bias_uA != 2016.0 || s.TxFreq_Hz != 20_000_000.0 {
		t.Fatalf("snapshot bias/freq: %+v", s)
	}
}
