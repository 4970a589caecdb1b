//go:build rp2040

// Command ips-demo: IPS2550 bring-up on RP2040/Pico.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/ips-demo
//
// Wiring assumptions (edit below as needed):
// - I2C0 @ 100 kHz: SDA=GP16, SCL=GP17.
// - IPS2550 on I2C address 0x18.
// - RX1 on GP26 (ADC0), RX2 on GP27 (ADC1), reference on GP28 (ADC2).
package main

import (
	"fmt"
	"machine"
	"time"

	"github.com/antoninovacalebre/pico-ips2550/drivers/ips2550"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(3 * time.Second)
	fmt.Println("\n== IPS2550 demo ==")

	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP16,
		SCL:       machine.GP17,
		Frequency: 100_000,
	})
	if err != nil {
		fmt.Println("i2c configure:", err)
		return
	}

	machine.InitADC()
	rx1 := machine.ADC{Pin: machine.GP26}
	rx2 := machine.ADC{Pin: machine.GP27}
	ref := machine.ADC{Pin: machine.GP28}
	rx1.Configure(machine.ADCConfig{})
	rx2.Configure(machine.ADCConfig{})
	ref.Configure(machine.ADCConfig{})

	dev := ips2550.New(machine.I2C0, rx1, rx2, ref, ips2550.Config{})

	steps := []struct {
		name string
		fn   func() error
	}{
		{"output mode", func() error { return dev.SetOutputMode(ips2550.ModeDifferential) }},
		{"supply voltage", func() error { return dev.SetSupplyVoltage(ips2550.VDD3V3) }},
		{"current bias", func() error { return dev.SetTxCurrentBias(0xFF) }},
		{"agc", func() error { return dev.SetAGC(false) }},
		{"gain boost", func() error { return dev.SetMasterGainBoost(true) }},
		{"gain code", func() error { return dev.SetMasterGainCode(50) }},
	}
	for _, st := range steps {
		if err := st.fn(); err != nil {
			fmt.Println("configure", st.name+":", err)
			return
		}
	}

	printStatus(dev)

	if est, err := dev.EstimateVtx(); err != nil {
		fmt.Println("vtx estimate:", err)
	} else {
		fmt.Printf("TX Coil Voltage           %.1f Vrms (%.1f Vpp)\n", est.RMS, est.PeakToPeak)
	}

	for {
		freq, err := dev.TxFrequency_Hz()
		if err != nil {
			fmt.Println("tx frequency:", err)
		} else {
			fmt.Printf("%0.2f MHz\t%0.3f V\t%0.3f V\n", freq/1e6, dev.RX1(), dev.RX2())
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func printStatus(dev *ips2550.Device) {
	s := dev.Snapshot()

	mode := "Differential"
	if s.Mode == ips2550.ModeSingleEnded {
		mode = "Single Ended"
	}
	fmt.Printf("Supply Voltage            %.1f V\n", s.Supply_V)
	fmt.Printf("Output Mode               %s\n", mode)
	fmt.Printf("Automatic Gain Control    %t\n", s.AGC)
	fmt.Printf("Master Gain Code          %d (%.2fx)\n", s.GainCode, s.Gain)
	fmt.Printf("Master Gain Boost (2x)    %t\n", s.GainBoost)
	fmt.Printf("Fine Gain 1               %d (%.5fx)\n", s.FineGain1Code, s.FineGain1)
	fmt.Printf("Fine Gain 2               %d (%.5fx)\n", s.FineGain2Code, s.FineGain2)
	fmt.Printf("Offset 1                  %d (%.6f*Vtx)\n", s.Offset1Sign*int(s.Offset1Code), s.Offset1Frac)
	fmt.Printf("Offset 2                  %d (%.6f*Vtx)\n", s.Offset2Sign*int(s.Offset2Code), s.Offset2Frac)
	fmt.Printf("TX Current Bias           %.1f uA\n", s.Bias_uA)
	fmt.Printf("TX Frequency              %.2f MHz\n", s.TxFreq_Hz/1e6)
}
