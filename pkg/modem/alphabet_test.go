package modem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAlphabetValid(t *testing.T) {
	assert.NoError(t, DefaultAlphabet().Validate(DefaultConfig()))
}

func TestAlphabetSeparation(t *testing.T) {
	cfg := DefaultConfig() // 100 ms window resolves 10 Hz

	a := DefaultAlphabet()
	a.Bit1 = a.Bit0 + 5 // closer than one cycle per window
	assert.Error(t, a.Validate(cfg))
}

func TestAlphabetNyquist(t *testing.T) {
	a := DefaultAlphabet()
	a.End = 30000
	assert.Error(t, a.Validate(DefaultConfig()))
}

func TestAlphabetNonPositive(t *testing.T) {
	a := DefaultAlphabet()
	a.Start = 0
	assert.Error(t, a.Validate(DefaultConfig()))
}
