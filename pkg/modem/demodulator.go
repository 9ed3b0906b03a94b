package modem

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the terminal outcome of a receive session.
type Status int

const (
	// StatusNotFound means no start tone was detected before the capture
	// ended.
	StatusNotFound Status = iota
	// StatusPartial means the start tone was found but the capture ended
	// before the end tone; whatever characters were fully assembled are
	// still returned.
	StatusPartial
	// StatusComplete means the frame was decoded through its end tone.
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusPartial:
		return "partial"
	default:
		return "not found"
	}
}

// Message is the result of a receive session.
type Message struct {
	Text   string
	Status Status
}

// ErrCorruptedSymbol is returned in strict mode when a window at an anchored
// symbol offset matches none of the alphabet tones.
var ErrCorruptedSymbol = errors.New("unclassifiable symbol in frame")

type demodState int

const (
	searching demodState = iota
	decoding
	finished
)

// Demodulator turns a streaming PCM capture back into text. It holds the
// whole receive-side state machine: the start-tone search, the single
// synchronization anchor, and the bit-group reassembly.
//
// Search phase: one-bit windows slide over the stream advanced by SyncStep
// (a fraction of the window, so no alignment is assumed). The first window
// that classifies as START begins anchor tracking; the search keeps sliding
// for up to one more window length and locks onto the best-scoring offset
// seen. From the anchor on, every window boundary is a fixed bit-duration
// offset. The lock is never revisited, so clock drift between the two
// machines is not compensated; for the short frames this protocol carries
// that trade is deliberate.
//
// Decode phase: each anchored window yields one symbol. Bits accumulate most
// significant first into a byte, eight per character. A window that matches
// no tone is substituted with the likelier bit (the default), or aborts with
// ErrCorruptedSymbol when Strict is set. Both policies are deterministic.
type Demodulator struct {
	Classifier *Classifier
	SyncStep   int  // search advance in samples; 0 means window/8
	Strict     bool // abort on unclassifiable windows instead of guessing

	state demodState
	buf   []int32
	pos   int // next window start, relative to buf

	tracking  bool // a candidate start tone is being hill-climbed
	bestScore float64
	bestPos   int

	bits  BitSet8
	nbits int
	text  strings.Builder
	chars int

	status Status
	err    error
}

// Feed appends captured samples and advances the state machine as far as the
// buffered data allows. It reports true once the demodulator has reached a
// terminal state; err is non-nil only for the strict corruption policy.
// Feeding after completion is a no-op.
func (d *Demodulator) Feed(samples []int32) (bool, error) {
	if d.state == finished {
		return true, d.err
	}
	d.buf = append(d.buf, samples...)
	d.run()
	return d.state == finished, d.err
}

// Finalize ends the session, typically on capture timeout, and returns the
// decoded message. A candidate start tone that was still being tracked is
// locked first so a capture truncated right after the start tone still
// counts as found, and a final window cut short by the anchor skew is
// zero-padded and classified so a capture ending right at the frame edge
// still completes. Any trailing bit group shorter than eight bits is
// discarded rather than guessed.
func (d *Demodulator) Finalize() Message {
	if d.state == searching && d.tracking {
		d.lock()
		d.run()
	}
	if d.state == decoding {
		d.flushTail()
	}
	switch d.state {
	case finished:
		// status already set by run
	case decoding:
		d.status = StatusPartial
	default:
		d.status = StatusNotFound
	}
	d.state = finished
	return Message{Text: d.text.String(), Status: d.status}
}

// Chars reports how many characters have been fully assembled so far, for
// progress reporting and diagnostics.
func (d *Demodulator) Chars() int {
	return d.chars
}

func (d *Demodulator) step() int {
	if d.SyncStep > 0 {
		return d.SyncStep
	}
	if s := d.Classifier.Config.SamplesPerSymbol() / 8; s > 0 {
		return s
	}
	return 1
}

// lock fixes the synchronization anchor at the best start-tone offset seen
// and switches to symbol-by-symbol decoding.
func (d *Demodulator) lock() {
	d.pos = d.bestPos + d.Classifier.Config.SamplesPerSymbol()
	d.tracking = false
	d.state = decoding
}

func (d *Demodulator) run() {
	win := d.Classifier.Config.SamplesPerSymbol()

	for d.state == searching {
		if d.tracking && d.pos-d.bestPos >= win {
			d.lock()
			break
		}
		if d.pos+win > len(d.buf) {
			d.trim()
			return
		}
		sym, scores := d.Classifier.Classify(d.buf[d.pos : d.pos+win])
		if sym == SymbolStart {
			if score := scores.of(SymbolStart); !d.tracking || score > d.bestScore {
				d.tracking = true
				d.bestScore = score
				d.bestPos = d.pos
			}
		}
		d.pos += d.step()
	}

	for d.state == decoding {
		if d.pos+win > len(d.buf) {
			return
		}
		sym, scores := d.Classifier.Classify(d.buf[d.pos : d.pos+win])
		d.pos += win
		switch sym {
		case SymbolEnd:
			d.status = StatusComplete
			d.state = finished
		case SymbolBit0:
			d.pushBit(false)
		case SymbolBit1:
			d.pushBit(true)
		default:
			// START mid-frame and unmatched windows get the same
			// treatment: this offset should have carried a bit.
			if d.Strict {
				d.err = fmt.Errorf("%w: window at sample %d scored %v", ErrCorruptedSymbol, d.pos-win, scores)
				d.status = StatusPartial
				d.state = finished
				break
			}
			d.pushBit(scores.BitGuess() == SymbolBit1)
		}
	}
}

// flushTail handles the samples left over when the capture ends mid-window.
// The anchor usually locks a few samples past the true symbol boundary, so
// the end tone's window can extend past the buffer even though the whole
// frame was heard. Padding the remainder with silence only dilutes the tone's
// normalized score in proportion to the missing samples; if the padded window
// still classifies as the end tone the frame is complete. Anything else stays
// discarded: a truncated bit window is never guessed from padding.
func (d *Demodulator) flushTail() {
	win := d.Classifier.Config.SamplesPerSymbol()
	rem := len(d.buf) - d.pos
	if rem <= 0 || rem >= win {
		return
	}
	window := append(append(make([]int32, 0, win), d.buf[d.pos:]...), make([]int32, win-rem)...)
	if sym, _ := d.Classifier.Classify(window); sym == SymbolEnd {
		d.status = StatusComplete
		d.state = finished
	}
}

func (d *Demodulator) pushBit(one bool) {
	if one {
		d.bits.Set(7 - d.nbits)
	}
	d.nbits++
	if d.nbits == 8 {
		d.writeChar(d.bits.ToByte())
		d.bits = 0
		d.nbits = 0
	}
}

// writeChar appends a decoded character. Non-printable bytes are rendered as
// their decimal code in brackets so a slightly corrupted transfer stays
// legible.
func (d *Demodulator) writeChar(c byte) {
	if c >= 0x20 && c < 0x7f {
		d.text.WriteByte(c)
	} else {
		fmt.Fprintf(&d.text, "[%d]", c)
	}
	d.chars++
}

// trim drops buffered samples the search has moved past. While no candidate
// start is being tracked nothing before pos can matter anymore; without this
// a long silent capture would hold every sample ever fed.
func (d *Demodulator) trim() {
	if d.tracking || d.pos == 0 {
		return
	}
	d.buf = append(d.buf[:0], d.buf[d.pos:]...)
	d.pos = 0
}
