package ips2550

import (
	"math"
	"time"
)

// TX coil voltage estimation.
//
// The coil voltage is not routed to any ADC, but the offset-1 trim injects a
// known fraction of it into receive channel 1:
//
//	sample = gain * (signal + frac*Vtx)
//
// Driving the trim to its two extremes and differencing the averaged samples
// cancels the unknown per-channel baseline, leaving a linear equation in Vtx.

// VtxEstimate holds the derived TX coil voltage figures, in volts.
type VtxEstimate struct {
	RMS        float64
	Peak       float64 // RMS * sqrt(2)
	PeakToPeak float64 // Peak * 2
}

// EstimateVtx measures the TX coil voltage by perturbing the offset-1 trim.
// It saves the current offset, drives the trim to the negative then positive
// extreme with an averaged receive-1 sample at each, and restores the saved
// offset before returning.
//
// The restore is attempted even when a measurement step fails. If the
// restore write itself fails the device is left perturbed and the error is a
// *RestoreError, distinct from the measurement error it wraps.
func (d *Device) EstimateVtx() (VtxEstimate, error) {
	origSign, origMag, err := d.readOffset(regOffset1)
	if err != nil {
		return VtxEstimate{}, err
	}
	gain, err := d.effectiveGain()
	if err != nil {
		return VtxEstimate{}, err
	}

	est, err := d.perturbAndMeasure(gain)

	rerr := d.SetOffset1(origSign, origMag)
	if rerr != nil {
		return VtxEstimate{}, &RestoreError{Cause: err, Err: rerr}
	}
	if err != nil {
		return VtxEstimate{}, err
	}
	return est, nil
}

func (d *Device) perturbAndMeasure(gain float64) (VtxEstimate, error) {
	if err := d.SetOffset1(-1, offsetMagMax); err != nil {
		return VtxEstimate{}, err
	}
	rxNeg := d.averageRX1()

	if err := d.SetOffset1(1, offsetMagMax); err != nil {
		return VtxEstimate{}, err
	}
	rxPos := d.averageRX1()

	return solveVtx(rxNeg, rxPos, gain), nil
}

// solveVtx solves the perturbation model for Vtx at the extreme trim codes.
func solveVtx(rxNeg, rxPos, gain float64) VtxEstimate {
	fracSpan := offsetFraction(1, offsetMagMax) - offsetFraction(-1, offsetMagMax)
	rms := math.Abs(rxPos-rxNeg) / (gain * fracSpan)
	peak := rms * math.Sqrt2
	return VtxEstimate{RMS: rms, Peak: peak, PeakToPeak: peak * 2}
}

// averageRX1 takes the configured number of receive-1 samples, spaced by the
// configured interval, and returns their mean.
func (d *Device) averageRX1() float64 {
	sum := d.RX1()
	for i := 1; i < d.samples; i++ {
		time.Sleep(d.sampleEvery)
		sum += d.RX1()
	}
	return sum / float64(d.samples)
}
