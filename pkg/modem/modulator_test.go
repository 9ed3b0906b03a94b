package modem

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulateBufferLength(t *testing.T) {
	m := &Modulator{Alphabet: DefaultAlphabet(), Config: testConfig}
	for _, msg := range []string{"", "A", "HI", "hello world"} {
		frame, err := EncodeFrame(msg)
		require.NoError(t, err)
		pcm := m.Modulate(frame)
		assert.Len(t, pcm, (8*len(msg)+2)*testConfig.SamplesPerSymbol(), "message %q", msg)
	}
}

func TestModulateDeterministic(t *testing.T) {
	frame, err := EncodeFrame("determinism")
	require.NoError(t, err)

	a := &Modulator{Alphabet: DefaultAlphabet(), Config: testConfig}
	b := &Modulator{Alphabet: DefaultAlphabet(), Config: testConfig}
	if !reflect.DeepEqual(a.Modulate(frame), b.Modulate(frame)) {
		t.Fatal("two modulators produced different buffers for the same frame")
	}
}

func TestModulateSymbolTones(t *testing.T) {
	m := &Modulator{Alphabet: DefaultAlphabet(), Config: testConfig}
	frame := []Symbol{SymbolStart, SymbolBit1, SymbolEnd}
	pcm := m.Modulate(frame)

	// Each symbol's slice must classify back to that symbol.
	c := testClassifier()
	spb := testConfig.SamplesPerSymbol()
	for i, want := range frame {
		sym, _ := c.Classify(pcm[i*spb : (i+1)*spb])
		assert.Equal(t, want, sym, "symbol %d", i)
	}
}

func TestModulateAmplitude(t *testing.T) {
	m := &Modulator{Alphabet: DefaultAlphabet(), Config: testConfig, Amplitude: 0.25}
	pcm := m.Modulate([]Symbol{SymbolBit0})
	scale := float64(0x7fffffff)
	limit := int32(0.26 * scale)
	for _, s := range pcm {
		if s > limit || s < -limit {
			t.Fatalf("sample %d exceeds requested amplitude", s)
		}
	}
}
