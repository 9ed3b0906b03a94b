package modem

// DefaultAmplitude leaves headroom below full scale so cheap speakers do
// not clip at the symbol boundaries.
const DefaultAmplitude = 0.8

// Modulator renders symbol frames into one contiguous PCM buffer. The tone
// burst for each symbol is synthesized once and reused, so modulation is a
// deterministic table concatenation: identical input always produces an
// identical buffer.
type Modulator struct {
	Alphabet  Alphabet
	Config    Config
	Amplitude float64 // 0..1 of full scale; 0 means DefaultAmplitude

	carriers map[Symbol][]int32
}

// Modulate synthesizes the frame. The output is exactly
// len(frame)*SamplesPerSymbol samples long with no gaps between symbols.
func (m *Modulator) Modulate(frame []Symbol) []int32 {
	spb := m.Config.SamplesPerSymbol()
	out := make([]int32, 0, len(frame)*spb)
	for _, sym := range frame {
		out = append(out, m.carrier(sym)...)
	}
	return out
}

func (m *Modulator) carrier(sym Symbol) []int32 {
	if table, ok := m.carriers[sym]; ok {
		return table
	}
	if m.carriers == nil {
		m.carriers = make(map[Symbol][]int32, 4)
	}
	amplitude := m.Amplitude
	if amplitude == 0 {
		amplitude = DefaultAmplitude
	}
	freqs := m.Alphabet.Frequencies()
	var freq float64
	for i, s := range toneSymbols {
		if s == sym {
			freq = freqs[i]
		}
	}
	table := Float64ToInt32(CarrierConfig{
		Amplitude:  amplitude,
		Freq:       freq,
		SampleRate: m.Config.SampleRate,
		Size:       m.Config.SamplesPerSymbol(),
	}.New())
	m.carriers[sym] = table
	return table
}
