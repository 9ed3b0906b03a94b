package modem

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned by EncodeFrame when the message contains a
// rune outside the 7-bit ASCII range. The check runs before any samples are
// synthesized so nothing is ever transmitted for a bad message.
var ErrInvalidCharacter = errors.New("message contains non-ASCII character")

// EncodeFrame converts a message into its on-air symbol sequence:
// START, then eight bits per character most significant bit first, then END.
// A message of L characters therefore always yields 8*L+2 symbols.
//
// The bit order is part of the wire format and must match the decoder.
func EncodeFrame(msg string) ([]Symbol, error) {
	for i, r := range msg {
		if r > 0x7f {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, r, i)
		}
	}

	frame := make([]Symbol, 0, 8*len(msg)+2)
	frame = append(frame, SymbolStart)
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		for bit := 7; bit >= 0; bit-- {
			if c&(1<<bit) != 0 {
				frame = append(frame, SymbolBit1)
			} else {
				frame = append(frame, SymbolBit0)
			}
		}
	}
	frame = append(frame, SymbolEnd)
	return frame, nil
}
