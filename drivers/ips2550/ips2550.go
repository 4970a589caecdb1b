// Package ips2550 provides a TinyGo driver for the IPS2550 inductive
// position sensor analog front end.
//
// Design notes (datasheet references):
//   - I2C, 7-bit address, 16-bit big-endian register frames with a 3-bit CRC
//     check code (generator 0b1011) and an 11-bit payload.
//   - Every writable register is mirrored at sub-address +0x40; field writes
//     fan out to both copies, shadow first, with a settling delay after each.
//   - Field writes are read-modify-write; unrelated payload bits are preserved.
//   - Master gain is table-driven (96 codes, 2x-123.24x) with an optional 2x
//     boost; fine gain and offset trims are small linear functions of 7-bit
//     codes.
//   - The TX coil voltage is not directly measurable; EstimateVtx derives it by
//     perturbing the offset-1 trim to both extremes and solving a linear model.
//
// The device handle is not safe for concurrent use: masked writes are
// read-modify-write and must be externally serialized.
package ips2550

import (
	"time"

	"tinygo.org/x/drivers"
)

// Config controls addressing, timing and measurement behaviour. All fields
// are optional; zero values select the defaults.
type Config struct {
	// Address is the 7-bit bus address. Defaults to AddressDefault.
	Address uint16
	// SettleDelay is the pause after every configuration write before the
	// next bus transaction, allowing the analog front end to stabilize.
	// Default 10 ms.
	SettleDelay time.Duration
	// VRef is the ADC full-scale reference in volts. Default 3.3.
	VRef float64
	// Samples is the number of averaged ADC reads per extreme during voltage
	// estimation. Default 10.
	Samples int
	// SampleInterval is the pause between those reads. Default 25 ms.
	SampleInterval time.Duration
}

// Device wraps an I2C connection and three ADC channels (two receive
// channels and the reference) attached to one IPS2550.
type Device struct {
	i2c  drivers.I2C
	addr uint16

	rx1, rx2, ref ADC

	settle      time.Duration
	vref        float64
	samples     int
	sampleEvery time.Duration

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [2]byte
}

// New creates an IPS2550 handle. The I2C bus and ADC channels must already be
// configured; this function does not touch the device.
func New(i2c drivers.I2C, rx1, rx2, ref ADC, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	settle := cfg.SettleDelay
	if settle <= 0 {
		settle = 10 * time.Millisecond
	}
	vref := cfg.VRef
	if vref == 0 {
		vref = 3.3
	}
	samples := cfg.Samples
	if samples <= 0 {
		samples = 10
	}
	every := cfg.SampleInterval
	if every <= 0 {
		every = 25 * time.Millisecond
	}
	return &Device{
		i2c:         i2c,
		addr:        addr,
		rx1:         rx1,
		rx2:         rx2,
		ref:         ref,
		settle:      settle,
		vref:        vref,
		samples:     samples,
		sampleEvery: every,
	}
}
