// Package ips2550 provides constants for register sub-addresses, field masks
// and frame layout used in the operation of the IPS2550 inductive position
// sensor AFE.
package ips2550

const (
	// 7-bit I2C address (0011000b).
	AddressDefault = 0x18

	// Configuration registers hold an 11-bit payload. Each writable register
	// has a shadow copy at sub-address +0x40; both copies are written on every
	// field change.
	regShadowOffset = 0x40

	// --- Register sub-addresses ---

	regSystemCfg  = 0x00 // output mode, AGC, sub-address
	regSupplyCfg  = 0x01 // supply voltage level
	regMasterGain = 0x02 // gain code + boost
	regFineGain1  = 0x03
	regOffset1    = 0x04
	regFineGain2  = 0x05
	regOffset2    = 0x06
	regTxBias     = 0x07
	regTxFreq     = 0x6E // R, no shadow

	// --- Field masks within the 11-bit payload ---

	maskSupplyVDD  = 0x0001 // regSupplyCfg bit 0
	maskOutputMode = 0x0002 // regSystemCfg bit 1
	maskAGCDisable = 0x0200 // regSystemCfg bit 9 (1 = AGC off)
	maskSubAddress = 0x00F0 // regSystemCfg bits 4-7
	maskGainCode   = 0x007F // regMasterGain bits 0-6
	maskGainBoost  = 0x0080 // regMasterGain bit 7
	maskFineGain   = 0x007F // bits 0-6
	maskOffsetMag  = 0x007F // bits 0-6
	maskOffsetSign = 0x0080 // bit 7 (1 = negative)
	maskTxBias     = 0x00FF // bits 0-7
	maskTxFreq     = 0x07FF // bits 0-10

	// --- Frame layout (16 bits, MSB first on the wire) ---
	// bits 15-5 payload, bits 4-3 write marker 0b11, bits 2-0 CRC check code.

	framePayloadShift = 5
	frameMarker       = 0x18
	frameCRCMask      = 0x0007

	// CRC-3 generator, bit-length 4.
	crcPoly = 0b1011
)
