package ips2550

// ADC is the method set of a TinyGo machine.ADC channel, kept as an
// interface so fakes can stand in on host builds.
type ADC interface {
	// Get returns the full-scale-normalized 16-bit conversion result.
	Get() uint16
}

func (d *Device) readVolts(ch ADC) float64 {
	return float64(ch.Get()) / 65536.0 * d.vref
}

// RX1 returns receive channel 1 in volts, relative to the reference channel.
func (d *Device) RX1() float64 {
	return d.readVolts(d.rx1) - d.readVolts(d.ref)
}

// RX2 returns receive channel 2 in volts, relative to the reference channel.
func (d *Device) RX2() float64 {
	return d.readVolts(d.rx2) - d.readVolts(d.ref)
}
