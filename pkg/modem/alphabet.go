package modem

import (
	"errors"
	"fmt"
	"math"
)

// Symbol is one element of the on-air tone alphabet.
type Symbol int

const (
	// SymbolNone means no alphabet tone could be recognized in a window.
	SymbolNone Symbol = iota
	SymbolStart
	SymbolBit0
	SymbolBit1
	SymbolEnd
)

func (s Symbol) String() string {
	switch s {
	case SymbolStart:
		return "START"
	case SymbolBit0:
		return "0"
	case SymbolBit1:
		return "1"
	case SymbolEnd:
		return "END"
	default:
		return "NONE"
	}
}

// toneSymbols lists the four transmittable symbols in the fixed order used
// by Alphabet.Frequencies and Scores.
var toneSymbols = [4]Symbol{SymbolStart, SymbolBit0, SymbolBit1, SymbolEnd}

// Alphabet maps each transmittable symbol to its carrier frequency in Hz.
// Sender and receiver must share the same value out of band; there is no
// in-band negotiation, so a mismatch silently garbles the transfer.
type Alphabet struct {
	Start float64
	Bit0  float64
	Bit1  float64
	End   float64
}

// DefaultAlphabet returns the stock frequency plan. All four tones sit well
// inside the passband of ordinary laptop speakers and microphones.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Start: 500,
		Bit0:  1000,
		Bit1:  2000,
		End:   3000,
	}
}

// Frequencies returns the four carrier frequencies in toneSymbols order.
func (a Alphabet) Frequencies() [4]float64 {
	return [4]float64{a.Start, a.Bit0, a.Bit1, a.End}
}

var errAlphabet = errors.New("invalid tone alphabet")

// Validate checks that every tone is usable at the given sampling parameters
// and that the tones are far enough apart to be told apart within a single
// bit window: adjacent frequencies must differ by at least one full cycle
// over the window, i.e. by at least 1/bitDuration Hz.
func (a Alphabet) Validate(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	minSeparation := 1.0 / cfg.BitDuration
	nyquist := cfg.SampleRate / 2
	freqs := a.Frequencies()
	for i, f := range freqs {
		if f <= 0 {
			return fmt.Errorf("%w: %s tone has non-positive frequency %g Hz", errAlphabet, toneSymbols[i], f)
		}
		if f >= nyquist {
			return fmt.Errorf("%w: %s tone at %g Hz is above the Nyquist limit %g Hz", errAlphabet, toneSymbols[i], f, nyquist)
		}
		for j := i + 1; j < len(freqs); j++ {
			if d := math.Abs(f - freqs[j]); d < minSeparation {
				return fmt.Errorf("%w: %s and %s tones are only %g Hz apart, need at least %g Hz",
					errAlphabet, toneSymbols[i], toneSymbols[j], d, minSeparation)
			}
		}
	}
	return nil
}
