package ips2550

import "math/bits"

// CRC performs binary polynomial long division of word by the generator
// polynomial and returns the remainder. If the polynomial's bit-length is g,
// the check width is n = g-1 bits: word is shifted left by n and OR'd with
// filler before dividing, so
//
//	CRC(w, p, 0)           computes the n-bit check code for w, and
//	CRC(w, p, checkCode)   is zero iff the received check code matches.
//
// Pure function of its inputs. The IPS2550 frames use crcPoly (CRC-3), but
// the division is polynomial-generic.
func CRC(word, polynomial, filler uint32) uint32 {
	g := bits.Len32(polynomial)
	n := g - 1
	rem := word<<n | filler
	for rem>>n != 0 {
		top := bits.Len32(rem)
		rem ^= polynomial << (top - g)
	}
	return rem &^ (0xFF << g)
}

// crcWord assembles the canonical CRC input for an 11-bit register payload:
// payload bits 3-10 at word bits 8-15, payload bits 0-2 at word bits 0-2.
// The write path additionally covers the register sub-address at the top;
// the read path checks the payload alone. Encode and decode must stay
// bit-for-bit symmetric, so both sides go through this one builder.
func crcWord(addr uint8, payload uint16, withAddress bool) uint32 {
	w := uint32(payload&0x07F8)>>3<<8 | uint32(payload&0x0007)
	if withAddress {
		w |= uint32(addr&0x7F) << 17
	}
	return w
}
