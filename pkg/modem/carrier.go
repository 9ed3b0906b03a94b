package modem

import "math"

// CarrierConfig describes one symbol's tone burst.
type CarrierConfig struct {
	Amplitude  float64 // peak amplitude, 0..1 of full scale
	Freq       float64 // carrier frequency in Hz
	SampleRate float64
	Size       int // samples per symbol
}

// New renders the burst. The phase always starts at zero, so consecutive
// symbols are not phase continuous; the resulting click at each boundary is
// small and harmless to the per-window classifier.
func (p CarrierConfig) New() []float64 {
	signal := make([]float64, p.Size)
	for i := 0; i < p.Size; i++ {
		t := float64(i) / p.SampleRate
		signal[i] = p.Amplitude * math.Sin(2*math.Pi*p.Freq*t)
	}
	return signal
}
