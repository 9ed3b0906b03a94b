package modem

import "math"

// Scores holds the normalized tone power of one window for each symbol in
// toneSymbols order. A clean full-window tone scores close to 1; silence,
// broadband noise and windows straddling a symbol boundary score low across
// the board.
type Scores [4]float64

// Best returns the strongest symbol and its score.
func (s Scores) Best() (Symbol, float64) {
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return toneSymbols[best], s[best]
}

// BitGuess returns the more plausible bit symbol regardless of threshold.
// The decoder uses it as the best-guess substitution for windows that do not
// classify cleanly.
func (s Scores) BitGuess() Symbol {
	if s[2] > s[1] {
		return SymbolBit1
	}
	return SymbolBit0
}

func (s Scores) of(sym Symbol) float64 {
	for i, t := range toneSymbols {
		if t == sym {
			return s[i]
		}
	}
	return 0
}

// DefaultNoiseThreshold is the fraction of total window energy the winning
// tone must carry before the window counts as that symbol. Pure synthetic
// tones score near 1.0; the default leaves ample margin for speaker and
// microphone coloration while still rejecting boundary-straddling windows.
const DefaultNoiseThreshold = 0.5

// Classifier decides which alphabet tone, if any, dominates a one-bit-long
// PCM window. Only the four alphabet frequencies are ever of interest, so a
// Goertzel single-bin estimator per frequency is enough; a full spectral
// transform would buy nothing here.
type Classifier struct {
	Alphabet       Alphabet
	Config         Config
	NoiseThreshold float64 // 0..1 fraction of window energy; 0 means DefaultNoiseThreshold

	coef  [4]float64
	size  int
	freqs [4]float64
	rate  float64
}

// Scores runs the four Goertzel recurrences over the window and normalizes
// each tone's power by the total window energy. Coefficients are cached and
// recomputed whenever the window size, alphabet or sample rate change; the
// per-frequency bin index k is deliberately not rounded to an integer,
// rounding would move the filter center away from the tone.
func (c *Classifier) Scores(window []int32) Scores {
	if len(window) == 0 {
		return Scores{}
	}
	if freqs := c.Alphabet.Frequencies(); len(window) != c.size || freqs != c.freqs || c.Config.SampleRate != c.rate {
		c.size = len(window)
		c.freqs = freqs
		c.rate = c.Config.SampleRate
		n := float64(c.size)
		for i, f := range freqs {
			k := n * f / c.rate
			c.coef[i] = 2 * math.Cos(2*math.Pi*k/n)
		}
	}

	var q1, q2 [4]float64
	energy := 0.0
	for _, s := range window {
		x := float64(s) / 0x7fffffff
		energy += x * x
		for i := 0; i < 4; i++ {
			q0 := x + c.coef[i]*q1[i] - q2[i]
			q2[i] = q1[i]
			q1[i] = q0
		}
	}

	var scores Scores
	if energy == 0 {
		return scores
	}
	// For a unit tone the Goertzel power is (N/2)^2 and the window energy
	// is N/2, so dividing by N/2*energy lands a clean tone at ~1.0.
	norm := float64(len(window)) / 2 * energy
	for i := 0; i < 4; i++ {
		power := q1[i]*q1[i] + q2[i]*q2[i] - q1[i]*q2[i]*c.coef[i]
		scores[i] = power / norm
	}
	return scores
}

// Classify returns the dominant symbol of the window, or SymbolNone when no
// tone clears the noise threshold. The scores are returned as well so the
// decoder can apply its substitution policy without a second pass.
func (c *Classifier) Classify(window []int32) (Symbol, Scores) {
	threshold := c.NoiseThreshold
	if threshold == 0 {
		threshold = DefaultNoiseThreshold
	}
	scores := c.Scores(window)
	sym, score := scores.Best()
	if score < threshold {
		return SymbolNone, scores
	}
	return sym, scores
}
