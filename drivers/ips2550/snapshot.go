package ips2550

// Snapshot collects the full configuration readback used by status dumps.
// Zero values remain where individual reads fail.
type Snapshot struct {
	Supply_V float64
	Mode     OutputMode
	AGC      bool

	GainCode  uint8
	Gain      float64
	GainBoost bool

	FineGain1Code, FineGain2Code uint8
	FineGain1, FineGain2         float64

	Offset1Sign, Offset2Sign int
	Offset1Code, Offset2Code uint8
	Offset1Frac, Offset2Frac float64

	Bias_uA    float64
	TxFreq_Hz  float64
	SubAddress uint8
}

func (d *Device) Snapshot() Snapshot {
	var s Snapshot
	d.SnapshotInto(&s)
	return s
}

func (d *Device) SnapshotInto(out *Snapshot) {
	var s Snapshot
	if v, e := d.SupplyVoltage_V(); e == nil {
		s.Supply_V = v
	}
	if v, e := d.OutputMode(); e == nil {
		s.Mode = v
	}
	if v, e := d.AGCEnabled(); e == nil {
		s.AGC = v
	}
	if v, e := d.MasterGainCode(); e == nil {
		s.GainCode = v
	}
	if v, e := d.MasterGain(); e == nil {
		s.Gain = v
	}
	if v, e := d.MasterGainBoost(); e == nil {
		s.GainBoost = v
	}
	if v, e := d.FineGain1Code(); e == nil {
		s.FineGain1Code = v
	}
	if v, e := d.FineGain1(); e == nil {
		s.FineGain1 = v
	}
	if v, e := d.FineGain2Code(); e == nil {
		s.FineGain2Code = v
	}
	if v, e := d.FineGain2(); e == nil {
		s.FineGain2 = v
	}
	if sign, mag, e := d.readOffset(regOffset1); e == nil {
		s.Offset1Sign = sign
		s.Offset1Code = mag
		s.Offset1Frac = offsetFraction(sign, mag)
	}
	if sign, mag, e := d.readOffset(regOffset2); e == nil {
		s.Offset2Sign = sign
		s.Offset2Code = mag
		s.Offset2Frac = offsetFraction(sign, mag)
	}
	if v, e := d.TxCurrentBias_uA(); e == nil {
		s.Bias_uA = v
	}
	if v, e := d.TxFrequency_Hz(); e == nil {
		s.TxFreq_Hz = v
	}
	if v, e := d.SubAddress(); e == nil {
		s.SubAddress = v
	}
	*out = s
}
