package modem

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the sampling parameters shared by sender and receiver.
// Like the tone alphabet it is distributed out of band; both ends must use
// identical values or decoding fails without any protocol-level signal.
type Config struct {
	SampleRate  float64 // samples per second
	BitDuration float64 // seconds per symbol
}

// DefaultConfig matches a stock sound card: 44100 Hz, 100 ms per symbol.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, BitDuration: 0.1}
}

// SamplesPerSymbol is the window length in samples. Every transmitted symbol
// occupies exactly this many samples, and the classifier only ever looks at
// windows of this size.
func (c Config) SamplesPerSymbol() int {
	return int(c.SampleRate*c.BitDuration + 0.5)
}

// SymbolPeriod is the wall-clock duration of one symbol.
func (c Config) SymbolPeriod() time.Duration {
	return time.Duration(c.BitDuration * float64(time.Second))
}

var errConfig = errors.New("invalid protocol config")

func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %g Hz", errConfig, c.SampleRate)
	}
	if c.BitDuration <= 0 {
		return fmt.Errorf("%w: bit duration %g s", errConfig, c.BitDuration)
	}
	if c.SamplesPerSymbol() < 2 {
		return fmt.Errorf("%w: %g s at %g Hz leaves no samples per symbol", errConfig, c.BitDuration, c.SampleRate)
	}
	return nil
}
