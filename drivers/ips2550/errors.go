package ips2550

import "errors"

// Sentinel errors (TinyGo-safe; no fmt).
var (
	// ErrCRC reports a received frame whose CRC remainder is nonzero. It is
	// never retried internally: a corrupted read may indicate a wiring fault.
	ErrCRC = errors.New("ips2550: crc check failed on read")

	// Range errors. Raised before any bus transaction, so device state is
	// guaranteed unmodified.
	ErrGainCode     = errors.New("ips2550: master gain code out of range (0-95)")
	ErrFineGainCode = errors.New("ips2550: fine gain code out of range (0-127)")
	ErrOffsetCode   = errors.New("ips2550: offset magnitude out of range (0-127)")
	ErrBiasCode     = errors.New("ips2550: current bias code out of range (0-255)")
	ErrSubAddress   = errors.New("ips2550: sub-address out of range (0-15)")
	ErrVoltageLevel = errors.New("ips2550: unknown supply voltage level")
	ErrOutputMode   = errors.New("ips2550: unknown output mode")

	// ErrGainTable reports a stored gain code beyond the 96-entry table, e.g.
	// from uninitialized hardware. Surfaced rather than silently truncated.
	ErrGainTable = errors.New("ips2550: stored gain code exceeds gain table")
)

// RestoreError reports that a voltage estimation failed to write the saved
// offset-1 setting back to the device. The device is left with a perturbed
// offset; the caller must re-trim before relying on measurements.
//
// Cause is the error that aborted the estimation, or nil if the measurement
// itself succeeded and only the final restore write failed.
type RestoreError struct {
	Cause error
	Err   error // the failed restore write
}

func (e *RestoreError) Error() string {
	return "ips2550: offset restore failed: " + e.Err.Error()
}

func (e *RestoreError) Unwrap() error { return e.Err }
