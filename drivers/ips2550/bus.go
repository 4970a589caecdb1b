package ips2550

import (
	"math/bits"
	"time"
)

// Framed register operations. Transactions are 2 bytes, big-endian, with the
// payload at bits 15-5 and the check code at bits 2-0.

// ReadRegister reads the frame at reg, validates its check code and returns
// the 11-bit payload. Returns ErrCRC on a nonzero CRC remainder; bus errors
// propagate as-is.
func (d *Device) ReadRegister(reg uint8) (uint16, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:2]); err != nil {
		return 0, err
	}
	frame := uint16(d.r[0])<<8 | uint16(d.r[1])
	check := uint32(frame & frameCRCMask)
	payload := frame >> framePayloadShift
	if CRC(crcWord(reg, payload, false), crcPoly, check) != 0 {
		return 0, ErrCRC
	}
	return payload, nil
}

// WriteRegister frames the 11-bit payload value with the write marker and a
// freshly computed check code, and writes it to reg. Domain validation is the
// field setters' job; this is the raw path.
func (d *Device) WriteRegister(reg uint8, value uint16) error {
	check := CRC(crcWord(reg, value, true), crcPoly, 0)
	frame := value<<framePayloadShift | frameMarker | uint16(check)
	d.w[0] = reg
	d.w[1] = byte(frame >> 8)
	d.w[2] = byte(frame)
	return d.i2c.Tx(d.addr, d.w[:3], nil)
}

// ReadMasked reads reg and returns the field selected by mask, shifted down
// to bit 0.
func (d *Device) ReadMasked(reg uint8, mask uint16) (uint16, error) {
	payload, err := d.ReadRegister(reg)
	if err != nil {
		return 0, err
	}
	return (payload & mask) >> uint(bits.TrailingZeros16(mask)), nil
}

// WriteMasked performs the read-modify-write pattern: bits outside mask are
// preserved exactly. value must already be aligned to the mask. Not atomic
// with respect to other writers.
func (d *Device) WriteMasked(reg uint8, value, mask uint16) error {
	payload, err := d.ReadRegister(reg)
	if err != nil {
		return err
	}
	payload = (payload &^ mask) | (value & mask)
	return d.WriteRegister(reg, payload)
}

// writePaired fans one logical field write out to the shadow register
// (reg+0x40) and then the primary, each followed by the settling delay.
func (d *Device) writePaired(reg uint8, value, mask uint16) error {
	if err := d.WriteMasked(reg+regShadowOffset, value, mask); err != nil {
		return err
	}
	time.Sleep(d.settle)
	if err := d.WriteMasked(reg, value, mask); err != nil {
		return err
	}
	time.Sleep(d.settle)
	return nil
}

// fieldVal aligns a raw code to a field mask.
func fieldVal(code uint16, mask uint16) uint16 {
	return (code << uint(bits.TrailingZeros16(mask))) & mask
}
