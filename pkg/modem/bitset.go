package modem

import "strings"

// BitSet8 is a fixed-size bit set backed by a single byte. The decoder uses
// it to assemble one character at a time; bit position 7 is the most
// significant bit, matching the frame encoder's bit order.
type BitSet8 byte

func (b *BitSet8) Set(pos int) {
	*b |= 1 << pos
}

func (b *BitSet8) Clear(pos int) {
	*b &^= 1 << pos
}

func (b *BitSet8) IsSet(pos int) bool {
	return *b&(1<<pos) != 0
}

// String renders the bits most significant first.
func (b BitSet8) String() string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		if b.IsSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b BitSet8) ToByte() byte {
	return byte(b)
}
